package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var loanColumns = []string{"loan_uid", "user_name", "book_uid", "quantity", "borrow_date",
	"expected_return_date", "actual_return_date", "status", "daily_rate", "total_fee"}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) error {
	query, args, err := qb.Insert(loansTableName).
		Columns(loanColumns...).
		Values(loan.LoanUid, loan.UserName, loan.BookUid, loan.Quantity, loan.BorrowDate,
			loan.ExpectedReturnDate, loan.ActualReturnDate, loan.Status, loan.DailyRate, loan.TotalFee).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetLoanForUpdate(ctx context.Context, loanUid uuid.UUID) (model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"loan_uid": loanUid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Loan{}, err
	}
	defer rows.Close()

	loan, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) ListLoans(ctx context.Context, userName string) ([]model.Loan, error) {
	query, args, err := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("borrow_date desc", "loan_uid").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Loan])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return loans, nil
}

const (
	markReturnedQuery = `
update loans
    set status = 'returned', actual_return_date = @returned_at, total_fee = @total_fee
where loan_uid = @loan_uid and status = 'active'`

	extendLoanQuery = `
update loans
    set expected_return_date = @expected_return_date
where loan_uid = @loan_uid and status = 'active'`
)

func (r *repository) MarkReturned(ctx context.Context, loanUid uuid.UUID, returnedAt time.Time, totalFee decimal.Decimal) (bool, error) {
	tag, err := r.db.Exec(ctx, markReturnedQuery, pgx.NamedArgs{
		"loan_uid":    loanUid,
		"returned_at": returnedAt,
		"total_fee":   totalFee,
	})
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repository) ExtendLoan(ctx context.Context, loanUid uuid.UUID, expectedReturnDate time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, extendLoanQuery, pgx.NamedArgs{
		"loan_uid":             loanUid,
		"expected_return_date": expectedReturnDate,
	})
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
