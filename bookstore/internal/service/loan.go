package service

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/events"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/fee"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ListLoans returns the user's loans; active loans past due are reported overdue.
func (s *Service) ListLoans(ctx context.Context, userName string) ([]model.Loan, error) {
	loans, err := s.repo.ListLoans(ctx, userName)
	if err != nil {
		return nil, s.finish("list loans", err, zap.String("user", userName))
	}
	now := s.now()
	out := make([]model.Loan, 0, len(loans))
	for _, l := range loans {
		out = append(out, l.WithDerivedStatus(now))
	}
	return out, nil
}

func (s *Service) ListOrders(ctx context.Context, userName string) ([]model.Order, error) {
	orders, err := s.repo.ListOrders(ctx, userName)
	if err != nil {
		return nil, s.finish("list orders", err, zap.String("user", userName))
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, userName string, orderUid uuid.UUID) (model.Order, error) {
	order, err := s.repo.GetOrder(ctx, userName, orderUid)
	if err != nil {
		return model.Order{}, s.finish("get order", err, zap.String("user", userName), zap.Stringer("order", orderUid))
	}
	return order, nil
}

// activeOwnedLoan locks the loan and checks it may still change.
func activeOwnedLoan(ctx context.Context, repo repository.Repository, userName string, loanUid uuid.UUID) (model.Loan, error) {
	loan, err := repo.GetLoanForUpdate(ctx, loanUid)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.UserName != userName {
		return model.Loan{}, errors.Wrap(errs.ErrInvalidLoanState, "loan belongs to another user")
	}
	if loan.Status != model.LoanActive {
		return model.Loan{}, errors.Wrapf(errs.ErrInvalidLoanState, "loan is %s", loan.Status)
	}
	return loan, nil
}

// ReturnLoan closes an active loan, bills it and puts the copies back into the
// purchasable stock. A second return of the same loan fails.
func (s *Service) ReturnLoan(ctx context.Context, userName string, loanUid uuid.UUID) (model.Charge, error) {
	var (
		charge model.Charge
		loan   model.Loan
	)
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		var err error
		if loan, err = activeOwnedLoan(ctx, repo, userName, loanUid); err != nil {
			return err
		}

		now := s.now().UTC()
		f := fee.Compute(loan.BorrowDate, now, loan.ExpectedReturnDate, loan.DailyRate)
		charge = model.Charge{
			LoanUid:     loan.LoanUid,
			DaysCharged: f.Days,
			OverdueDays: f.OverdueDays,
			BaseFee:     fee.Scale(f.Base, loan.Quantity),
			OverdueFee:  fee.Scale(f.Overdue, loan.Quantity),
			TotalFee:    fee.Scale(f.Total(), loan.Quantity),
			ReturnedAt:  now,
		}

		applied, err := repo.MarkReturned(ctx, loan.LoanUid, now, charge.TotalFee)
		if err != nil {
			return errors.Wrap(err, "MarkReturned")
		}
		if !applied {
			return errs.ErrInvalidLoanState
		}
		// returned copies re-enter the purchasable pool
		if err := repo.IncrementStock(ctx, loan.BookUid, loan.Quantity); err != nil {
			return errors.Wrap(err, "IncrementStock")
		}
		return nil
	})
	if err != nil {
		return model.Charge{}, s.finish("return loan", err, zap.String("user", userName), zap.Stringer("loan", loanUid))
	}

	s.log.Info("loan returned",
		zap.Stringer("loan", loanUid),
		zap.Int("days", charge.DaysCharged),
		zap.Int("overdueDays", charge.OverdueDays),
		zap.Stringer("fee", charge.TotalFee))
	total := charge.TotalFee
	s.publish(ctx, events.Event{
		Type:     events.LoanReturned,
		UserName: userName,
		LoanUid:  &loan.LoanUid,
		BookUid:  &loan.BookUid,
		Quantity: loan.Quantity,
		Amount:   &total,
	})
	return charge, nil
}

// ExtendLoan moves the expected return date of an active loan by ExtensionWindow.
// Nothing is charged now; the longer loan is billed on return.
func (s *Service) ExtendLoan(ctx context.Context, userName string, loanUid uuid.UUID) (time.Time, error) {
	var due time.Time
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		loan, err := activeOwnedLoan(ctx, repo, userName, loanUid)
		if err != nil {
			return err
		}
		due = loan.ExpectedReturnDate.Add(ExtensionWindow)
		applied, err := repo.ExtendLoan(ctx, loan.LoanUid, due)
		if err != nil {
			return errors.Wrap(err, "ExtendLoan")
		}
		if !applied {
			return errs.ErrInvalidLoanState
		}
		return nil
	})
	if err != nil {
		return time.Time{}, s.finish("extend loan", err, zap.String("user", userName), zap.Stringer("loan", loanUid))
	}

	s.log.Info("loan extended", zap.Stringer("loan", loanUid), zap.Time("due", due))
	s.publish(ctx, events.Event{
		Type:     events.LoanExtended,
		UserName: userName,
		LoanUid:  &loanUid,
		DueDate:  &due,
	})
	return due, nil
}
