package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/pkg/auth"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// borrowDaysCookie keeps the borrowing days picked by the user for the session.
const borrowDaysCookie = "borrowDays"

// borrowDays takes the explicit value first, then the session cookie.
// Zero lets the service apply its default.
func borrowDays(c echo.Context, explicit int) int {
	if explicit != 0 {
		return explicit
	}
	cookie, err := c.Cookie(borrowDaysCookie)
	if err != nil {
		return 0
	}
	days, err := strconv.Atoi(cookie.Value)
	if err != nil || days < 1 {
		return 0
	}
	return days
}

func rememberBorrowDays(c echo.Context, days int) {
	if days < 1 {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     borrowDaysCookie,
		Value:    strconv.Itoa(days),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
}

func queryDays(c echo.Context) (int, error) {
	raw := c.QueryParam("days")
	if raw == "" {
		return 0, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid days")
	}
	return days, nil
}

func (h *Handler) GetCart(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	mode := model.Mode(c.QueryParam("mode"))
	if mode == "" {
		mode = model.ModePurchase
	}
	days, err := queryDays(c)
	if err != nil {
		return err
	}
	if mode == model.ModeBorrow {
		days = borrowDays(c, days)
	}

	cart, err := h.bookstoreSvc.Cart(c.Request().Context(), userName, mode, days)
	if err != nil {
		return toHTTPError(err)
	}
	if mode == model.ModeBorrow {
		rememberBorrowDays(c, cart.Days)
	}
	return c.JSON(http.StatusOK, cart)
}

// GetCarts returns the purchase and the borrow cart in one response.
func (h *Handler) GetCarts(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	days, err := queryDays(c)
	if err != nil {
		return err
	}
	days = borrowDays(c, days)

	var carts model.Carts
	gg, ctx := errgroup.WithContext(c.Request().Context())
	gg.Go(func() error {
		cart, err := h.bookstoreSvc.Cart(ctx, userName, model.ModePurchase, 0)
		if err != nil {
			return err
		}
		carts.Purchase = cart
		return nil
	})
	gg.Go(func() error {
		cart, err := h.bookstoreSvc.Cart(ctx, userName, model.ModeBorrow, days)
		if err != nil {
			return err
		}
		carts.Borrow = cart
		return nil
	})
	if err := gg.Wait(); err != nil {
		return toHTTPError(err)
	}
	rememberBorrowDays(c, carts.Borrow.Days)
	return c.JSON(http.StatusOK, carts)
}

func (h *Handler) AddSelection(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.AddSelectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	bookUid, err := uuid.Parse(req.BookUid)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bookUid")
	}

	if err := h.bookstoreSvc.AddSelection(c.Request().Context(), userName, bookUid, req.Mode, req.Quantity); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) RemoveSelection(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	bookUid, err := uuidParam(c, "bookUid")
	if err != nil {
		return err
	}
	mode := model.Mode(c.QueryParam("mode"))
	if mode == "" {
		mode = model.ModePurchase
	}

	if err := h.bookstoreSvc.RemoveSelection(c.Request().Context(), userName, bookUid, mode); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
