package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-service/pkg/auth"
	"github.com/Astemirdum/bookstore-service/pkg/validate"
	_ "github.com/Astemirdum/bookstore-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	bookstoreSvc BookstoreService
	log          *zap.Logger
}

func New(bookstoreSvc BookstoreService, log *zap.Logger) *Handler {
	return &Handler{
		bookstoreSvc: bookstoreSvc,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookUid", h.GetBook)

	user := api.Group("", auth.MiddlewareUserName)
	user.GET("/cart", h.GetCart)
	user.GET("/carts", h.GetCarts)
	user.POST("/cart/items", h.AddSelection)
	user.DELETE("/cart/items/:bookUid", h.RemoveSelection)

	user.POST("/checkout/purchase", h.CheckoutPurchase)
	user.POST("/checkout/borrow", h.CheckoutBorrow)

	user.GET("/orders", h.ListOrders)
	user.GET("/orders/:orderUid", h.GetOrder)

	user.GET("/loans", h.ListLoans)
	user.POST("/loans/:loanUid/return", h.ReturnLoan)
	user.POST("/loans/:loanUid/extend", h.ExtendLoan)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
