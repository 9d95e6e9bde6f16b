package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/service"
	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookstoreService interface {
	ListBooks(ctx context.Context, page, size int) (model.ListBooks, error)
	GetBook(ctx context.Context, bookUid uuid.UUID) (model.Book, error)

	Cart(ctx context.Context, userName string, mode model.Mode, days int) (model.CartView, error)
	AddSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode, quantity int) error
	RemoveSelection(ctx context.Context, userName string, bookUid uuid.UUID, mode model.Mode) error

	CheckoutPurchase(ctx context.Context, userName string) (model.Order, error)
	CheckoutBorrow(ctx context.Context, userName string, days int) ([]model.Loan, error)
	ListOrders(ctx context.Context, userName string) ([]model.Order, error)
	GetOrder(ctx context.Context, userName string, orderUid uuid.UUID) (model.Order, error)

	ListLoans(ctx context.Context, userName string) ([]model.Loan, error)
	ReturnLoan(ctx context.Context, userName string, loanUid uuid.UUID) (model.Charge, error)
	ExtendLoan(ctx context.Context, userName string, loanUid uuid.UUID) (time.Time, error)
}

var _ BookstoreService = (*service.Service)(nil)
