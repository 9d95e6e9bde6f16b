package handler

import (
	"net/http"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// toHTTPError maps service errors. Persistence failures keep their cause out of the response.
func toHTTPError(err error) error {
	var (
		stockErr       *errs.InsufficientStockError
		unavailableErr *errs.BookUnavailableError
	)
	switch {
	case errors.As(err, &stockErr):
		return echo.NewHTTPError(http.StatusConflict, errs.ErrorResponse{Message: errs.ErrInsufficientStock.Error(), Line: stockErr})
	case errors.As(err, &unavailableErr):
		return echo.NewHTTPError(http.StatusConflict, errs.ErrorResponse{Message: errs.ErrBookUnavailable.Error(), Line: unavailableErr})
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidLoanState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrEmptySelection),
		errors.Is(err, errs.ErrInvalidBorrowDays),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, errs.ErrInvalidMode):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrPersistence):
		return echo.NewHTTPError(http.StatusInternalServerError, errs.ErrPersistence.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
