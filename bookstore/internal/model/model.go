package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModePurchase Mode = "purchase"
	ModeBorrow   Mode = "borrow"
)

func (m Mode) Valid() bool {
	return m == ModePurchase || m == ModeBorrow
}

type Book struct {
	BookUid               uuid.UUID       `json:"bookUid" db:"book_uid"`
	Title                 string          `json:"title" db:"title"`
	Author                string          `json:"author" db:"author"`
	Price                 decimal.Decimal `json:"price" db:"price"`
	DailyRate             decimal.Decimal `json:"dailyRate" db:"daily_rate"`
	StockQuantity         int             `json:"stockQuantity" db:"stock_quantity"`
	AvailableForBorrowing int             `json:"availableForBorrowing" db:"available_for_borrowing"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []Book `json:"items"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// Selection is a cart line joined with the current book row.
type Selection struct {
	UserName              string          `json:"-" db:"user_name"`
	BookUid               uuid.UUID       `json:"bookUid" db:"book_uid"`
	Mode                  Mode            `json:"mode" db:"mode"`
	Quantity              int             `json:"quantity" db:"quantity"`
	Title                 string          `json:"title" db:"title"`
	Price                 decimal.Decimal `json:"price" db:"price"`
	DailyRate             decimal.Decimal `json:"dailyRate" db:"daily_rate"`
	StockQuantity         int             `json:"stockQuantity" db:"stock_quantity"`
	AvailableForBorrowing int             `json:"availableForBorrowing" db:"available_for_borrowing"`
}

type AddSelectionRequest struct {
	BookUid  string `json:"bookUid" validate:"required,uuid"`
	Mode     Mode   `json:"mode" validate:"required,oneof=purchase borrow"`
	Quantity int    `json:"quantity" validate:"omitempty,gte=1"`
}

type CartLine struct {
	BookUid      uuid.UUID       `json:"bookUid"`
	Title        string          `json:"title"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	Available    int             `json:"available"`
	StockWarning bool            `json:"stockWarning"`
}

type CartView struct {
	Mode  Mode            `json:"mode"`
	Days  int             `json:"days,omitempty"`
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type Carts struct {
	Purchase CartView `json:"purchase"`
	Borrow   CartView `json:"borrow"`
}

type OrderStatus string

const (
	OrderPending OrderStatus = "pending"
)

type Order struct {
	OrderUid    uuid.UUID       `json:"orderUid" db:"order_uid"`
	UserName    string          `json:"username" db:"user_name"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status      OrderStatus     `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	Lines       []OrderLine     `json:"lines" db:"-"`
}

type OrderLine struct {
	LineNo    int             `json:"lineNo" db:"line_no"`
	BookUid   uuid.UUID       `json:"bookUid" db:"book_uid"`
	Quantity  int             `json:"quantity" db:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice" db:"unit_price"`
}

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanOverdue  LoanStatus = "overdue"
	LoanReturned LoanStatus = "returned"
)

// Loan.Status is only ever persisted as active or returned; overdue is derived.
type Loan struct {
	LoanUid            uuid.UUID        `json:"loanUid" db:"loan_uid"`
	UserName           string           `json:"username" db:"user_name"`
	BookUid            uuid.UUID        `json:"bookUid" db:"book_uid"`
	Quantity           int              `json:"quantity" db:"quantity"`
	BorrowDate         time.Time        `json:"borrowDate" db:"borrow_date"`
	ExpectedReturnDate time.Time        `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *time.Time       `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Status             LoanStatus       `json:"status" db:"status"`
	DailyRate          decimal.Decimal  `json:"dailyRate" db:"daily_rate"`
	TotalFee           *decimal.Decimal `json:"totalFee,omitempty" db:"total_fee"`
}

func (l Loan) EffectiveStatus(now time.Time) LoanStatus {
	if l.Status == LoanActive && now.After(l.ExpectedReturnDate) {
		return LoanOverdue
	}
	return l.Status
}

// WithDerivedStatus returns a copy fit for reading, status overdue included.
func (l Loan) WithDerivedStatus(now time.Time) Loan {
	l.Status = l.EffectiveStatus(now)
	return l
}

type BorrowRequest struct {
	Days int `json:"days" validate:"omitempty,gte=1"`
}

type Charge struct {
	LoanUid     uuid.UUID       `json:"loanUid"`
	DaysCharged int             `json:"daysCharged"`
	OverdueDays int             `json:"overdueDays"`
	BaseFee     decimal.Decimal `json:"baseFee"`
	OverdueFee  decimal.Decimal `json:"overdueFee"`
	TotalFee    decimal.Decimal `json:"totalFee"`
	ReturnedAt  time.Time       `json:"returnedAt"`
}

type ExtendResponse struct {
	LoanUid            uuid.UUID `json:"loanUid"`
	ExpectedReturnDate time.Time `json:"expectedReturnDate"`
}
