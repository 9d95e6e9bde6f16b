package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CatalogRepository
	SelectionRepository
	OrderRepository
	LoanRepository

	// WithTx runs fn against a repository bound to one transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(repo Repository) error) error
}

type CatalogRepository interface {
	GetBook(ctx context.Context, bookUid uuid.UUID) (model.Book, error)
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	// DecrementStock reports false when stock_quantity < quantity; nothing changes then.
	DecrementStock(ctx context.Context, bookUid uuid.UUID, quantity int) (bool, error)
	// DecrementBorrowable reports false when available_for_borrowing < quantity.
	DecrementBorrowable(ctx context.Context, bookUid uuid.UUID, quantity int) (bool, error)
	IncrementStock(ctx context.Context, bookUid uuid.UUID, quantity int) error
}

type SelectionRepository interface {
	ListSelections(ctx context.Context, userName string, mode model.Mode) ([]model.Selection, error)
	// LockSelections is ListSelections holding row locks until the transaction ends.
	LockSelections(ctx context.Context, userName string, mode model.Mode) ([]model.Selection, error)
	AddSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode, quantity int) error
	RemoveSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode) error
	ClearSelections(ctx context.Context, userName string, mode model.Mode) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order model.Order) error
	AddOrderLine(ctx context.Context, orderUid uuid.UUID, line model.OrderLine) error
	ListOrders(ctx context.Context, userName string) ([]model.Order, error)
	GetOrder(ctx context.Context, userName string, orderUid uuid.UUID) (model.Order, error)
}

type LoanRepository interface {
	CreateLoan(ctx context.Context, loan model.Loan) error
	GetLoanForUpdate(ctx context.Context, loanUid uuid.UUID) (model.Loan, error)
	ListLoans(ctx context.Context, userName string) ([]model.Loan, error)
	// MarkReturned reports false when the loan is not active any more.
	MarkReturned(ctx context.Context, loanUid uuid.UUID, returnedAt time.Time, totalFee decimal.Decimal) (bool, error)
	ExtendLoan(ctx context.Context, loanUid uuid.UUID, expectedReturnDate time.Time) (bool, error)
}

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	db  dbtx
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName      = `books`
	selectionsTableName = `selections`
	ordersTableName     = `orders`
	orderLinesTableName = `order_lines`
	loansTableName      = `loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("rollback", zap.Error(rbErr))
		}
	}()

	if err = fn(&repository{db: tx, log: r.log}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

func isPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isCheckViolation(err error) bool {
	return isPgCode(err, pgerrcode.CheckViolation)
}
