package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

func (r *repository) selectionsQuery(userName string, mode model.Mode) sq.SelectBuilder {
	// inner join: a selection whose book is gone is skipped
	return qb.Select("s.user_name", "s.book_uid", "s.mode", "s.quantity",
		"b.title", "b.price", "b.daily_rate", "b.stock_quantity", "b.available_for_borrowing").
		From(selectionsTableName + " s").
		Join(fmt.Sprintf("%s b on b.book_uid = s.book_uid", booksTableName)).
		Where(sq.Eq{"s.user_name": userName}).
		Where(sq.Eq{"s.mode": mode}).
		OrderBy("s.created_at", "s.book_uid")
}

func (r *repository) ListSelections(ctx context.Context, userName string, mode model.Mode) ([]model.Selection, error) {
	return r.collectSelections(ctx, r.selectionsQuery(userName, mode))
}

func (r *repository) LockSelections(ctx context.Context, userName string, mode model.Mode) ([]model.Selection, error) {
	return r.collectSelections(ctx, r.selectionsQuery(userName, mode).Suffix("for update of s"))
}

func (r *repository) collectSelections(ctx context.Context, q sq.SelectBuilder) ([]model.Selection, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Selection])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

// AddSelection increments the quantity of an existing purchase line.
// Borrow lines are added once; repeating the add changes nothing.
func (r *repository) AddSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode, quantity int) error {
	q := qb.Insert(selectionsTableName).
		Columns("user_name", "book_uid", "mode", "quantity")
	if mode == model.ModeBorrow {
		q = q.Values(userName, bookUid, mode, 1).
			Suffix("on conflict (user_name, book_uid, mode) do nothing")
	} else {
		q = q.Values(userName, bookUid, mode, quantity).
			Suffix("on conflict (user_name, book_uid, mode) do update set quantity = selections.quantity + excluded.quantity")
	}
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isPgCode(err, pgerrcode.ForeignKeyViolation) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *repository) RemoveSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode) error {
	query, args, err := qb.Delete(selectionsTableName).
		Where(sq.Eq{"user_name": userName, "book_uid": bookUid, "mode": mode}).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ClearSelections(ctx context.Context, userName string, mode model.Mode) error {
	query, args, err := qb.Delete(selectionsTableName).
		Where(sq.Eq{"user_name": userName, "mode": mode}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}
