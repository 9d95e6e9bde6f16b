package service

import (
	"bytes"
	"context"
	"sort"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/events"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/fee"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CheckoutPurchase turns the purchase cart into a pending order. The order, its
// lines, every stock decrement and the cart clean up commit together or not at all.
func (s *Service) CheckoutPurchase(ctx context.Context, userName string) (model.Order, error) {
	var order model.Order
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		selections, err := repo.LockSelections(ctx, userName, model.ModePurchase)
		if err != nil {
			return errors.Wrap(err, "LockSelections")
		}
		if len(selections) == 0 {
			return errs.ErrEmptySelection
		}

		cart := BuildCart(model.ModePurchase, 0, selections)
		order = model.Order{
			OrderUid:    uuid.New(),
			UserName:    userName,
			TotalAmount: cart.Total,
			Status:      model.OrderPending,
			CreatedAt:   s.now().UTC(),
			Lines:       make([]model.OrderLine, 0, len(selections)),
		}
		if err := repo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "CreateOrder")
		}

		for i, sel := range selections {
			line := model.OrderLine{
				LineNo:    i + 1,
				BookUid:   sel.BookUid,
				Quantity:  sel.Quantity,
				UnitPrice: sel.Price,
			}
			if err := repo.AddOrderLine(ctx, order.OrderUid, line); err != nil {
				return errors.Wrap(err, "AddOrderLine")
			}
			order.Lines = append(order.Lines, line)
		}

		for _, sel := range lockOrder(selections) {
			applied, err := repo.DecrementStock(ctx, sel.BookUid, sel.Quantity)
			if err != nil {
				return errors.Wrap(err, "DecrementStock")
			}
			if !applied {
				return &errs.InsufficientStockError{
					BookUid:   sel.BookUid,
					Title:     sel.Title,
					Requested: sel.Quantity,
				}
			}
		}

		if err := repo.ClearSelections(ctx, userName, model.ModePurchase); err != nil {
			return errors.Wrap(err, "ClearSelections")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, s.finish("checkout purchase", err, zap.String("user", userName))
	}

	s.log.Info("order placed",
		zap.String("user", userName),
		zap.Stringer("order", order.OrderUid),
		zap.Stringer("total", order.TotalAmount))
	amount := order.TotalAmount
	s.publish(ctx, events.Event{
		Type:     events.OrderPlaced,
		UserName: userName,
		OrderUid: &order.OrderUid,
		Amount:   &amount,
	})
	return order, nil
}

// CheckoutBorrow issues one active loan per borrow cart line for days days.
// All availability decrements, loans and the cart clean up commit together.
func (s *Service) CheckoutBorrow(ctx context.Context, userName string, days int) ([]model.Loan, error) {
	days, err := s.BorrowDays(days)
	if err != nil {
		return nil, err
	}

	var loans []model.Loan
	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		selections, err := repo.LockSelections(ctx, userName, model.ModeBorrow)
		if err != nil {
			return errors.Wrap(err, "LockSelections")
		}
		if len(selections) == 0 {
			return errs.ErrEmptySelection
		}

		now := s.now().UTC()
		due := now.AddDate(0, 0, days)
		for _, sel := range lockOrder(selections) {
			applied, err := repo.DecrementBorrowable(ctx, sel.BookUid, sel.Quantity)
			if err != nil {
				return errors.Wrap(err, "DecrementBorrowable")
			}
			if !applied {
				return &errs.BookUnavailableError{
					BookUid:   sel.BookUid,
					Title:     sel.Title,
					Requested: sel.Quantity,
				}
			}
		}

		loans = make([]model.Loan, 0, len(selections))
		for _, sel := range selections {
			projected := fee.Scale(fee.Projected(sel.DailyRate, days), sel.Quantity)
			loan := model.Loan{
				LoanUid:            uuid.New(),
				UserName:           userName,
				BookUid:            sel.BookUid,
				Quantity:           sel.Quantity,
				BorrowDate:         now,
				ExpectedReturnDate: due,
				Status:             model.LoanActive,
				DailyRate:          sel.DailyRate,
				TotalFee:           &projected,
			}
			if err := repo.CreateLoan(ctx, loan); err != nil {
				return errors.Wrap(err, "CreateLoan")
			}
			loans = append(loans, loan)
		}

		if err := repo.ClearSelections(ctx, userName, model.ModeBorrow); err != nil {
			return errors.Wrap(err, "ClearSelections")
		}
		return nil
	})
	if err != nil {
		return nil, s.finish("checkout borrow", err, zap.String("user", userName), zap.Int("days", days))
	}

	s.log.Info("loans issued", zap.String("user", userName), zap.Int("count", len(loans)), zap.Int("days", days))
	for i := range loans {
		loan := loans[i]
		s.publish(ctx, events.Event{
			Type:     events.LoanIssued,
			UserName: userName,
			LoanUid:  &loan.LoanUid,
			BookUid:  &loan.BookUid,
			Quantity: loan.Quantity,
			Amount:   loan.TotalFee,
			DueDate:  &loan.ExpectedReturnDate,
		})
	}
	return loans, nil
}

// lockOrder returns the selections sorted by book so that concurrent checkouts
// take the book row locks in the same order.
func lockOrder(selections []model.Selection) []model.Selection {
	sorted := append([]model.Selection(nil), selections...)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].BookUid[:], sorted[j].BookUid[:]) < 0
	})
	return sorted
}
