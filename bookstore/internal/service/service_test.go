package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/config"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/events"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var t0 = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	st    *fakeStore
	svc   *service.Service
	clock *clock
	pub   *recordingPublisher
	dune  model.Book
	emma  model.Book
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock: &clock{now: t0},
		pub:   &recordingPublisher{},
		dune: model.Book{
			BookUid: uuid.New(), Title: "Dune", Author: "Frank Herbert",
			Price: dec("12.50"), DailyRate: dec("2.00"),
			StockQuantity: 5, AvailableForBorrowing: 2,
		},
		emma: model.Book{
			BookUid: uuid.New(), Title: "Emma", Author: "Jane Austen",
			Price: dec("8.00"), DailyRate: dec("0.75"),
			StockQuantity: 1, AvailableForBorrowing: 1,
		},
	}
	f.st = newFakeStore(f.dune, f.emma)
	f.svc = service.NewService(f.st.repo(), config.Lending{DefaultDays: 7, MaxDays: 30}, zap.NewNop(),
		service.WithClock(f.clock.Now),
		service.WithPublisher(f.pub),
	)
	return f
}

func (f *fixture) add(t *testing.T, user string, book model.Book, mode model.Mode, qty int) {
	t.Helper()
	require.NoError(t, f.svc.AddSelection(context.Background(), user, book.BookUid, mode, qty))
}

func TestCart_Purchase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModePurchase, 2)
	f.add(t, "alice", f.emma, model.ModePurchase, 1)
	f.add(t, "alice", f.dune, model.ModePurchase, 1)

	cart, err := f.svc.Cart(ctx, "alice", model.ModePurchase, 0)
	require.NoError(t, err)
	require.Equal(t, model.ModePurchase, cart.Mode)
	require.Zero(t, cart.Days)
	require.Len(t, cart.Lines, 2)

	require.Equal(t, f.dune.BookUid, cart.Lines[0].BookUid)
	require.Equal(t, 3, cart.Lines[0].Quantity)
	requireDec(t, "37.50", cart.Lines[0].LineTotal)
	require.False(t, cart.Lines[0].StockWarning)
	requireDec(t, "45.50", cart.Total)

	other, err := f.svc.Cart(ctx, "bob", model.ModePurchase, 0)
	require.NoError(t, err)
	require.Empty(t, other.Lines)
	requireDec(t, "0", other.Total)
}

func TestCart_BorrowUsesDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModeBorrow, 0)
	// a repeated borrow add is idempotent
	f.add(t, "alice", f.dune, model.ModeBorrow, 3)

	cart, err := f.svc.Cart(ctx, "alice", model.ModeBorrow, 0)
	require.NoError(t, err)
	require.Equal(t, 7, cart.Days)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, 1, cart.Lines[0].Quantity)
	requireDec(t, "14", cart.Total)

	cart, err = f.svc.Cart(ctx, "alice", model.ModeBorrow, 10)
	require.NoError(t, err)
	requireDec(t, "20", cart.Total)

	_, err = f.svc.Cart(ctx, "alice", model.ModeBorrow, -1)
	require.ErrorIs(t, err, errs.ErrInvalidBorrowDays)
	_, err = f.svc.Cart(ctx, "alice", model.ModeBorrow, 31)
	require.ErrorIs(t, err, errs.ErrInvalidBorrowDays)
	_, err = f.svc.Cart(ctx, "alice", model.Mode("rent"), 1)
	require.ErrorIs(t, err, errs.ErrInvalidMode)
}

func TestCart_StockWarningAndOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.emma, model.ModePurchase, 3)
	f.add(t, "alice", f.dune, model.ModePurchase, 1)

	// the book disappears from the catalog after it was selected
	f.st.mu.Lock()
	delete(f.st.state.books, f.dune.BookUid)
	f.st.mu.Unlock()

	cart, err := f.svc.Cart(ctx, "alice", model.ModePurchase, 0)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	require.Equal(t, f.emma.BookUid, cart.Lines[0].BookUid)
	require.True(t, cart.Lines[0].StockWarning)
	require.Equal(t, 1, cart.Lines[0].Available)
}

func TestAddRemoveSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.ErrorIs(t, f.svc.AddSelection(ctx, "alice", uuid.New(), model.ModePurchase, 1), errs.ErrNotFound)
	require.ErrorIs(t, f.svc.AddSelection(ctx, "alice", f.dune.BookUid, model.ModePurchase, -2), errs.ErrInvalidQuantity)
	require.ErrorIs(t, f.svc.AddSelection(ctx, "alice", f.dune.BookUid, "gift", 1), errs.ErrInvalidMode)

	f.add(t, "alice", f.dune, model.ModePurchase, 1)
	f.add(t, "alice", f.dune, model.ModeBorrow, 1)
	require.NoError(t, f.svc.RemoveSelection(ctx, "alice", f.dune.BookUid, model.ModePurchase))
	require.ErrorIs(t, f.svc.RemoveSelection(ctx, "alice", f.dune.BookUid, model.ModePurchase), errs.ErrNotFound)

	borrow, err := f.svc.Cart(ctx, "alice", model.ModeBorrow, 0)
	require.NoError(t, err)
	require.Len(t, borrow.Lines, 1)
}

func TestCheckoutPurchase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModePurchase, 2)
	f.add(t, "alice", f.emma, model.ModePurchase, 1)
	f.add(t, "alice", f.dune, model.ModeBorrow, 1)

	order, err := f.svc.CheckoutPurchase(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, model.OrderPending, order.Status)
	require.Equal(t, "alice", order.UserName)
	requireDec(t, "33", order.TotalAmount)
	require.Len(t, order.Lines, 2)
	require.Equal(t, 1, order.Lines[0].LineNo)
	requireDec(t, "12.50", order.Lines[0].UnitPrice)

	require.Equal(t, 3, f.st.book(f.dune.BookUid).StockQuantity)
	require.Equal(t, 0, f.st.book(f.emma.BookUid).StockQuantity)
	require.Equal(t, 2, f.st.book(f.dune.BookUid).AvailableForBorrowing)

	purchase, err := f.svc.Cart(ctx, "alice", model.ModePurchase, 0)
	require.NoError(t, err)
	require.Empty(t, purchase.Lines)
	borrow, err := f.svc.Cart(ctx, "alice", model.ModeBorrow, 0)
	require.NoError(t, err)
	require.Len(t, borrow.Lines, 1, "borrow selections survive a purchase checkout")

	stored, err := f.svc.GetOrder(ctx, "alice", order.OrderUid)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 2)
	_, err = f.svc.GetOrder(ctx, "bob", order.OrderUid)
	require.ErrorIs(t, err, errs.ErrNotFound)

	orders, err := f.svc.ListOrders(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, []events.Type{events.OrderPlaced}, f.pub.types())
}

func TestCheckout_DecrementsInBookOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, second := f.dune.BookUid, f.emma.BookUid
	if bytes.Compare(first[:], second[:]) > 0 {
		first, second = second, first
	}

	// opposite cart order for the two users
	f.add(t, "alice", f.dune, model.ModePurchase, 1)
	f.add(t, "alice", f.emma, model.ModePurchase, 1)
	f.add(t, "bob", f.emma, model.ModeBorrow, 1)
	f.add(t, "bob", f.dune, model.ModeBorrow, 1)

	order, err := f.svc.CheckoutPurchase(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, f.dune.BookUid, order.Lines[0].BookUid, "line numbers follow the cart")
	require.Equal(t, f.emma.BookUid, order.Lines[1].BookUid)

	loans, err := f.svc.CheckoutBorrow(ctx, "bob", 3)
	require.NoError(t, err)
	require.Equal(t, f.emma.BookUid, loans[0].BookUid)
	require.Equal(t, f.dune.BookUid, loans[1].BookUid)

	require.Equal(t, []uuid.UUID{first, second, first, second}, f.st.decrementOrder())
}

func TestCheckoutPurchase_PriceSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModePurchase, 1)

	order, err := f.svc.CheckoutPurchase(ctx, "alice")
	require.NoError(t, err)

	f.st.mu.Lock()
	b := f.st.state.books[f.dune.BookUid]
	b.Price = dec("99")
	f.st.state.books[f.dune.BookUid] = b
	f.st.mu.Unlock()

	stored, err := f.svc.GetOrder(ctx, "alice", order.OrderUid)
	require.NoError(t, err)
	requireDec(t, "12.50", stored.Lines[0].UnitPrice)
}

func TestCheckoutPurchase_Empty(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CheckoutPurchase(context.Background(), "alice")
	require.ErrorIs(t, err, errs.ErrEmptySelection)

	orders, loans, selections := f.st.counts()
	require.Zero(t, orders+loans+selections)
	require.Equal(t, 5, f.st.book(f.dune.BookUid).StockQuantity)
	require.Empty(t, f.pub.types())
}

func TestCheckoutPurchase_InsufficientStockRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModePurchase, 2)
	f.add(t, "alice", f.emma, model.ModePurchase, 2)

	_, err := f.svc.CheckoutPurchase(ctx, "alice")
	require.ErrorIs(t, err, errs.ErrInsufficientStock)

	var stockErr *errs.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	require.Equal(t, f.emma.BookUid, stockErr.BookUid)
	require.Equal(t, 2, stockErr.Requested)

	// the first line's decrement is rolled back with the rest
	require.Equal(t, 5, f.st.book(f.dune.BookUid).StockQuantity)
	require.Equal(t, 1, f.st.book(f.emma.BookUid).StockQuantity)
	orders, _, selections := f.st.counts()
	require.Zero(t, orders)
	require.Equal(t, 2, selections)
}

func TestCheckoutPurchase_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	f.add(t, "alice", f.dune, model.ModePurchase, 1)
	f.st.failOn["ClearSelections"] = errors.New("connection reset")

	_, err := f.svc.CheckoutPurchase(context.Background(), "alice")
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.False(t, errs.IsBusiness(err))

	orders, _, selections := f.st.counts()
	require.Zero(t, orders)
	require.Equal(t, 1, selections)
	require.Equal(t, 5, f.st.book(f.dune.BookUid).StockQuantity)
}

func TestCheckoutPurchase_NoOversellUnderConcurrency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const buyers = 12
	for i := 0; i < buyers; i++ {
		f.add(t, fmt.Sprintf("user-%d", i), f.dune, model.ModePurchase, 1)
	}

	var (
		wg        sync.WaitGroup
		sold      atomic.Int64
		rejected  atomic.Int64
		unexpects atomic.Int64
	)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := f.svc.CheckoutPurchase(ctx, user)
			switch {
			case err == nil:
				sold.Add(1)
			case errors.Is(err, errs.ErrInsufficientStock):
				rejected.Add(1)
			default:
				unexpects.Add(1)
			}
		}(fmt.Sprintf("user-%d", i))
	}
	wg.Wait()

	require.EqualValues(t, 5, sold.Load())
	require.EqualValues(t, buyers-5, rejected.Load())
	require.Zero(t, unexpects.Load())
	require.Equal(t, 0, f.st.book(f.dune.BookUid).StockQuantity)
}

func TestCheckoutBorrow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.dune, model.ModeBorrow, 1)
	f.add(t, "alice", f.emma, model.ModeBorrow, 1)

	loans, err := f.svc.CheckoutBorrow(ctx, "alice", 10)
	require.NoError(t, err)
	require.Len(t, loans, 2)

	l := loans[0]
	require.Equal(t, f.dune.BookUid, l.BookUid)
	require.Equal(t, model.LoanActive, l.Status)
	require.Equal(t, t0, l.BorrowDate)
	require.Equal(t, t0.AddDate(0, 0, 10), l.ExpectedReturnDate)
	require.Nil(t, l.ActualReturnDate)
	requireDec(t, "2", l.DailyRate)
	requireDec(t, "20", *l.TotalFee)

	require.Equal(t, 1, f.st.book(f.dune.BookUid).AvailableForBorrowing)
	require.Equal(t, 0, f.st.book(f.emma.BookUid).AvailableForBorrowing)
	require.Equal(t, 5, f.st.book(f.dune.BookUid).StockQuantity, "stock is untouched by borrowing")

	cart, err := f.svc.Cart(ctx, "alice", model.ModeBorrow, 0)
	require.NoError(t, err)
	require.Empty(t, cart.Lines)
	require.Equal(t, []events.Type{events.LoanIssued, events.LoanIssued}, f.pub.types())
}

func TestCheckoutBorrow_DefaultDaysAndValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.CheckoutBorrow(ctx, "alice", 0)
	require.ErrorIs(t, err, errs.ErrEmptySelection)
	_, err = f.svc.CheckoutBorrow(ctx, "alice", -3)
	require.ErrorIs(t, err, errs.ErrInvalidBorrowDays)

	f.add(t, "alice", f.dune, model.ModeBorrow, 1)
	loans, err := f.svc.CheckoutBorrow(ctx, "alice", 0)
	require.NoError(t, err)
	require.Equal(t, t0.AddDate(0, 0, 7), loans[0].ExpectedReturnDate)
}

func TestCheckoutBorrow_UnavailableRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "bob", f.emma, model.ModeBorrow, 1)
	_, err := f.svc.CheckoutBorrow(ctx, "bob", 7)
	require.NoError(t, err)

	f.add(t, "alice", f.dune, model.ModeBorrow, 1)
	f.add(t, "alice", f.emma, model.ModeBorrow, 1)
	_, err = f.svc.CheckoutBorrow(ctx, "alice", 7)
	require.ErrorIs(t, err, errs.ErrBookUnavailable)

	var unavailable *errs.BookUnavailableError
	require.True(t, errors.As(err, &unavailable))
	require.Equal(t, "Emma", unavailable.Title)

	require.Equal(t, 2, f.st.book(f.dune.BookUid).AvailableForBorrowing)
	_, loans, selections := f.st.counts()
	require.Equal(t, 1, loans)
	require.Equal(t, 2, selections)
}

func TestCheckoutBorrow_LastCopyConcurrently(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.add(t, "alice", f.emma, model.ModeBorrow, 1)
	f.add(t, "bob", f.emma, model.ModeBorrow, 1)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := f.svc.CheckoutBorrow(ctx, user, 7)
			results <- err
		}(user)
	}
	wg.Wait()
	close(results)

	var ok, unavailable int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, errs.ErrBookUnavailable):
			unavailable++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, unavailable)
	require.Equal(t, 0, f.st.book(f.emma.BookUid).AvailableForBorrowing)
}

func borrowOne(t *testing.T, f *fixture, user string, book model.Book, days int) model.Loan {
	t.Helper()
	f.add(t, user, book, model.ModeBorrow, 1)
	loans, err := f.svc.CheckoutBorrow(context.Background(), user, days)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	return loans[0]
}

func TestReturnLoan_Overdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loan := borrowOne(t, f, "alice", f.dune, 7)

	f.clock.Advance(10 * 24 * time.Hour)
	charge, err := f.svc.ReturnLoan(ctx, "alice", loan.LoanUid)
	require.NoError(t, err)
	require.Equal(t, 10, charge.DaysCharged)
	require.Equal(t, 3, charge.OverdueDays)
	requireDec(t, "20", charge.BaseFee)
	requireDec(t, "9", charge.OverdueFee)
	requireDec(t, "29", charge.TotalFee)

	stored := f.st.loan(loan.LoanUid)
	require.Equal(t, model.LoanReturned, stored.Status)
	require.NotNil(t, stored.ActualReturnDate)
	require.Equal(t, t0.Add(10*24*time.Hour), *stored.ActualReturnDate)
	requireDec(t, "29", *stored.TotalFee)

	// copies go back to the purchasable stock, not to the lending pool
	require.Equal(t, 6, f.st.book(f.dune.BookUid).StockQuantity)
	require.Equal(t, 1, f.st.book(f.dune.BookUid).AvailableForBorrowing)
}

func TestReturnLoan_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loan := borrowOne(t, f, "alice", f.dune, 7)
	f.clock.Advance(36 * time.Hour)

	charge, err := f.svc.ReturnLoan(ctx, "alice", loan.LoanUid)
	require.NoError(t, err)
	requireDec(t, "4", charge.TotalFee)

	_, err = f.svc.ReturnLoan(ctx, "alice", loan.LoanUid)
	require.ErrorIs(t, err, errs.ErrInvalidLoanState)

	require.Equal(t, 6, f.st.book(f.dune.BookUid).StockQuantity)
	requireDec(t, "4", *f.st.loan(loan.LoanUid).TotalFee)
	require.Equal(t, []events.Type{events.LoanIssued, events.LoanReturned}, f.pub.types())
}

func TestReturnLoan_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loan := borrowOne(t, f, "alice", f.dune, 7)

	_, err := f.svc.ReturnLoan(ctx, "bob", loan.LoanUid)
	require.ErrorIs(t, err, errs.ErrInvalidLoanState)
	_, err = f.svc.ReturnLoan(ctx, "alice", uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)

	f.st.failOn["IncrementStock"] = errors.New("disk full")
	_, err = f.svc.ReturnLoan(ctx, "alice", loan.LoanUid)
	require.ErrorIs(t, err, errs.ErrPersistence)
	require.Equal(t, model.LoanActive, f.st.loan(loan.LoanUid).Status, "failed return is rolled back")
}

func TestExtendLoan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loan := borrowOne(t, f, "alice", f.dune, 7)

	due, err := f.svc.ExtendLoan(ctx, "alice", loan.LoanUid)
	require.NoError(t, err)
	require.Equal(t, loan.ExpectedReturnDate.Add(7*24*time.Hour), due)

	stored := f.st.loan(loan.LoanUid)
	require.Equal(t, due, stored.ExpectedReturnDate)
	require.Equal(t, model.LoanActive, stored.Status)
	requireDec(t, "2", stored.DailyRate)

	// billed over the extended window once returned on the new due date
	f.clock.Advance(14 * 24 * time.Hour)
	charge, err := f.svc.ReturnLoan(ctx, "alice", loan.LoanUid)
	require.NoError(t, err)
	requireDec(t, "28", charge.TotalFee)
	require.Zero(t, charge.OverdueDays)

	_, err = f.svc.ExtendLoan(ctx, "alice", loan.LoanUid)
	require.ErrorIs(t, err, errs.ErrInvalidLoanState)
}

func TestExtendLoan_WrongOwner(t *testing.T) {
	f := newFixture(t)
	loan := borrowOne(t, f, "alice", f.dune, 7)
	_, err := f.svc.ExtendLoan(context.Background(), "mallory", loan.LoanUid)
	require.ErrorIs(t, err, errs.ErrInvalidLoanState)
	require.Equal(t, loan.ExpectedReturnDate, f.st.loan(loan.LoanUid).ExpectedReturnDate)
}

func TestListLoans_DerivesOverdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	loan := borrowOne(t, f, "alice", f.dune, 3)

	loans, err := f.svc.ListLoans(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, model.LoanActive, loans[0].Status)

	f.clock.Advance(4 * 24 * time.Hour)
	loans, err = f.svc.ListLoans(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, model.LoanOverdue, loans[0].Status)
	// never persisted
	require.Equal(t, model.LoanActive, f.st.loan(loan.LoanUid).Status)
}

func TestPublishFailureDoesNotFailCheckout(t *testing.T) {
	f := newFixture(t)
	f.pub.err = errors.New("broker down")
	f.add(t, "alice", f.dune, model.ModePurchase, 1)

	_, err := f.svc.CheckoutPurchase(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 4, f.st.book(f.dune.BookUid).StockQuantity)
}

func TestCatalog(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	books, err := f.svc.ListBooks(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, books.Items, 2)
	require.Equal(t, "Dune", books.Items[0].Title)

	book, err := f.svc.GetBook(ctx, f.emma.BookUid)
	require.NoError(t, err)
	require.Equal(t, "Emma", book.Title)

	_, err = f.svc.GetBook(ctx, uuid.New())
	require.ErrorIs(t, err, errs.ErrNotFound)
}
