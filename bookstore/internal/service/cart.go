package service

import (
	"context"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/fee"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Cart returns the user's selections of one mode priced with current book data.
// days only matters for the borrow mode.
func (s *Service) Cart(ctx context.Context, userName string, mode model.Mode, days int) (model.CartView, error) {
	if !mode.Valid() {
		return model.CartView{}, errs.ErrInvalidMode
	}
	if mode == model.ModeBorrow {
		var err error
		if days, err = s.BorrowDays(days); err != nil {
			return model.CartView{}, err
		}
	}
	selections, err := s.repo.ListSelections(ctx, userName, mode)
	if err != nil {
		return model.CartView{}, s.finish("cart", err, zap.String("user", userName))
	}
	return BuildCart(mode, days, selections), nil
}

// BuildCart prices selections. Purchase lines cost price*quantity,
// borrow lines dailyRate*days*quantity.
func BuildCart(mode model.Mode, days int, selections []model.Selection) model.CartView {
	view := model.CartView{
		Mode:  mode,
		Lines: make([]model.CartLine, 0, len(selections)),
		Total: decimal.Zero,
	}
	if mode == model.ModeBorrow {
		view.Days = days
	}
	for _, sel := range selections {
		line := model.CartLine{
			BookUid:  sel.BookUid,
			Title:    sel.Title,
			Quantity: sel.Quantity,
		}
		if mode == model.ModeBorrow {
			line.UnitPrice = sel.DailyRate
			line.LineTotal = fee.Scale(fee.Projected(sel.DailyRate, days), sel.Quantity)
			line.Available = sel.AvailableForBorrowing
		} else {
			line.UnitPrice = sel.Price
			line.LineTotal = fee.Scale(sel.Price, sel.Quantity)
			line.Available = sel.StockQuantity
		}
		// informational only, checkout validates again
		line.StockWarning = line.Available < line.Quantity
		view.Total = view.Total.Add(line.LineTotal)
		view.Lines = append(view.Lines, line)
	}
	return view
}

// AddSelection puts a book into the user's cart. A purchase add increases the
// held quantity; a borrow add is idempotent.
func (s *Service) AddSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode, quantity int) error {
	if !mode.Valid() {
		return errs.ErrInvalidMode
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return errs.ErrInvalidQuantity
	}
	err := s.repo.AddSelection(ctx, userName, bookUid, mode, quantity)
	return s.finish("add selection", err, zap.String("user", userName), zap.Stringer("book", bookUid))
}

func (s *Service) RemoveSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode) error {
	if !mode.Valid() {
		return errs.ErrInvalidMode
	}
	err := s.repo.RemoveSelection(ctx, userName, bookUid, mode)
	return s.finish("remove selection", err, zap.String("user", userName), zap.Stringer("book", bookUid))
}
