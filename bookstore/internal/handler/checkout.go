package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CheckoutPurchase(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	order, err := h.bookstoreSvc.CheckoutPurchase(c.Request().Context(), userName)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) CheckoutBorrow(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	days := borrowDays(c, req.Days)
	loans, err := h.bookstoreSvc.CheckoutBorrow(c.Request().Context(), userName, days)
	if err != nil {
		return toHTTPError(err)
	}
	rememberBorrowDays(c, days)
	return c.JSON(http.StatusCreated, loans)
}

func (h *Handler) ListOrders(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	orders, err := h.bookstoreSvc.ListOrders(c.Request().Context(), userName)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetOrder(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	orderUid, err := uuidParam(c, "orderUid")
	if err != nil {
		return err
	}
	order, err := h.bookstoreSvc.GetOrder(c.Request().Context(), userName, orderUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, order)
}
