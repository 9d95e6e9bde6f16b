package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListLoans(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	loans, err := h.bookstoreSvc.ListLoans(c.Request().Context(), userName)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	loanUid, err := uuidParam(c, "loanUid")
	if err != nil {
		return err
	}
	charge, err := h.bookstoreSvc.ReturnLoan(c.Request().Context(), userName, loanUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, charge)
}

func (h *Handler) ExtendLoan(c echo.Context) error {
	userName, err := auth.GetUserName(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	loanUid, err := uuidParam(c, "loanUid")
	if err != nil {
		return err
	}
	due, err := h.bookstoreSvc.ExtendLoan(c.Request().Context(), userName, loanUid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, model.ExtendResponse{
		LoanUid:            loanUid,
		ExpectedReturnDate: due,
	})
}
