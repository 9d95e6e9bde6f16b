package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"

	userNameKey = "userName"
)

var ErrNoUserName = errors.New("user name is empty")

// MiddlewareUserName takes the caller identity forwarded by the gateway
// and stores it in the echo context.
func MiddlewareUserName(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userName := strings.TrimSpace(c.Request().Header.Get(XUserNameHeader))
		if userName == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, ErrNoUserName.Error())
		}
		c.Set(userNameKey, userName)
		return next(c)
	}
}

func GetUserName(c echo.Context) (string, error) {
	userName, ok := c.Get(userNameKey).(string)
	if !ok || userName == "" {
		return "", ErrNoUserName
	}
	return userName, nil
}
