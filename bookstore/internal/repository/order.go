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

type orderRow struct {
	OrderUid    uuid.UUID         `db:"order_uid"`
	UserName    string            `db:"user_name"`
	TotalAmount decimal.Decimal   `db:"total_amount"`
	Status      model.OrderStatus `db:"status"`
	CreatedAt   time.Time         `db:"created_at"`
}

func (o orderRow) toModel() model.Order {
	return model.Order{
		OrderUid:    o.OrderUid,
		UserName:    o.UserName,
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		Lines:       []model.OrderLine{},
	}
}

type orderLineRow struct {
	OrderUid uuid.UUID `db:"order_uid"`
	model.OrderLine
}

func (r *repository) CreateOrder(ctx context.Context, order model.Order) error {
	query, args, err := qb.Insert(ordersTableName).
		Columns("order_uid", "user_name", "total_amount", "status", "created_at").
		Values(order.OrderUid, order.UserName, order.TotalAmount, order.Status, order.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.log.Error("CreateOrder", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) AddOrderLine(ctx context.Context, orderUid uuid.UUID, line model.OrderLine) error {
	query, args, err := qb.Insert(orderLinesTableName).
		Columns("order_uid", "line_no", "book_uid", "quantity", "unit_price").
		Values(orderUid, line.LineNo, line.BookUid, line.Quantity, line.UnitPrice).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return err
}

func (r *repository) ListOrders(ctx context.Context, userName string) ([]model.Order, error) {
	query, args, err := qb.Select("order_uid", "user_name", "total_amount", "status", "created_at").
		From(ordersTableName).
		Where(sq.Eq{"user_name": userName}).
		OrderBy("created_at desc", "order_uid").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[orderRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	if len(orderRows) == 0 {
		return []model.Order{}, nil
	}

	orders := make([]model.Order, 0, len(orderRows))
	uids := make([]uuid.UUID, 0, len(orderRows))
	byUid := make(map[uuid.UUID]int, len(orderRows))
	for i := range orderRows {
		byUid[orderRows[i].OrderUid] = i
		uids = append(uids, orderRows[i].OrderUid)
		orders = append(orders, orderRows[i].toModel())
	}

	lines, err := r.orderLines(ctx, uids)
	if err != nil {
		return nil, err
	}
	for _, l := range lines {
		i := byUid[l.OrderUid]
		orders[i].Lines = append(orders[i].Lines, l.OrderLine)
	}
	return orders, nil
}

func (r *repository) GetOrder(ctx context.Context, userName string, orderUid uuid.UUID) (model.Order, error) {
	query, args, err := qb.Select("order_uid", "user_name", "total_amount", "status", "created_at").
		From(ordersTableName).
		Where(sq.Eq{"order_uid": orderUid, "user_name": userName}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.Order{}, err
	}
	defer rows.Close()

	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[orderRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, errs.ErrNotFound
		}
		return model.Order{}, err
	}

	order := row.toModel()
	lines, err := r.orderLines(ctx, []uuid.UUID{orderUid})
	if err != nil {
		return model.Order{}, err
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, l.OrderLine)
	}
	return order, nil
}

func (r *repository) orderLines(ctx context.Context, orderUids []uuid.UUID) ([]orderLineRow, error) {
	query, args, err := qb.Select("order_uid", "line_no", "book_uid", "quantity", "unit_price").
		From(orderLinesTableName).
		Where(sq.Eq{"order_uid": orderUids}).
		OrderBy("order_uid", "line_no").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, pgx.RowToStructByName[orderLineRow])
}
