package repository

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var bookColumns = []string{"book_uid", "title", "author", "price", "daily_rate", "stock_quantity", "available_for_borrowing"}

func (r *repository) GetBook(ctx context.Context, bookUid uuid.UUID) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"book_uid": bookUid}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Book{}, err
	}
	defer rows.Close()

	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	q := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("title", "book_uid")
	if page != 0 && size != 0 {
		q = q.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.ListBooks{}, err
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.ListBooks{}, errors.Wrap(err, "pgx.CollectRows")
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}

// The guard lives in the update itself so that two transactions can never
// both see enough stock and then both decrement it.
const (
	decrementStockQuery = `
update books
    set stock_quantity = stock_quantity - @quantity
where book_uid = @book_uid and stock_quantity >= @quantity`

	decrementBorrowableQuery = `
update books
    set available_for_borrowing = available_for_borrowing - @quantity
where book_uid = @book_uid and available_for_borrowing >= @quantity`

	incrementStockQuery = `
update books
    set stock_quantity = stock_quantity + @quantity
where book_uid = @book_uid`
)

func (r *repository) DecrementStock(ctx context.Context, bookUid uuid.UUID, quantity int) (bool, error) {
	return r.conditionalUpdate(ctx, decrementStockQuery, bookUid, quantity)
}

func (r *repository) DecrementBorrowable(ctx context.Context, bookUid uuid.UUID, quantity int) (bool, error) {
	return r.conditionalUpdate(ctx, decrementBorrowableQuery, bookUid, quantity)
}

func (r *repository) IncrementStock(ctx context.Context, bookUid uuid.UUID, quantity int) error {
	applied, err := r.conditionalUpdate(ctx, incrementStockQuery, bookUid, quantity)
	if err != nil {
		return err
	}
	if !applied {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) conditionalUpdate(ctx context.Context, q string, bookUid uuid.UUID, quantity int) (bool, error) {
	args := pgx.NamedArgs{
		"book_uid": bookUid,
		"quantity": quantity,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		if isCheckViolation(err) {
			return false, nil
		}
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
