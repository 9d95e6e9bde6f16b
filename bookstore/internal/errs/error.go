package errs

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUserName          = errors.New("username is required")
	ErrEmptySelection    = errors.New("nothing to checkout")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrBookUnavailable   = errors.New("book unavailable for borrowing")
	ErrInvalidLoanState  = errors.New("invalid loan state")
	ErrInvalidBorrowDays = errors.New("invalid borrowing days")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidMode       = errors.New("mode must be purchase or borrow")
	ErrPersistence       = errors.New("persistence failure")
)

// InsufficientStockError names the order line whose stock decrement did not apply.
type InsufficientStockError struct {
	BookUid   uuid.UUID `json:"bookUid"`
	Title     string    `json:"title"`
	Requested int       `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %q requested %d", ErrInsufficientStock, e.Title, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// BookUnavailableError names the borrow line whose availability decrement did not apply.
type BookUnavailableError struct {
	BookUid   uuid.UUID `json:"bookUid"`
	Title     string    `json:"title"`
	Requested int       `json:"requested"`
}

func (e *BookUnavailableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrBookUnavailable, e.Title)
}

func (e *BookUnavailableError) Is(target error) bool {
	return target == ErrBookUnavailable
}

// PersistenceError wraps a store failure. The cause is kept for logs only.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// IsBusiness reports whether err is an expected outcome that is shown to the user as is.
func IsBusiness(err error) bool {
	for _, target := range []error{
		ErrNotFound,
		ErrEmptySelection,
		ErrInsufficientStock,
		ErrBookUnavailable,
		ErrInvalidLoanState,
		ErrInvalidBorrowDays,
		ErrInvalidQuantity,
		ErrInvalidMode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Persistence turns any non business error into a PersistenceError.
func Persistence(op string, err error) error {
	if err == nil || IsBusiness(err) || errors.Is(err, ErrPersistence) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

type ErrorResponse struct {
	Message string `json:"message"`
	Line    any    `json:"line,omitempty"`
}
