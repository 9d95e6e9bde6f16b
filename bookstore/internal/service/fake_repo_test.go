package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type selectionKey struct {
	user string
	book uuid.UUID
	mode model.Mode
}

type storedSelection struct {
	quantity int
	seq      int
}

type storeState struct {
	books      map[uuid.UUID]model.Book
	selections map[selectionKey]storedSelection
	orders     map[uuid.UUID]model.Order
	loans      map[uuid.UUID]model.Loan
	seq        int
}

func (s storeState) clone() storeState {
	c := storeState{
		books:      make(map[uuid.UUID]model.Book, len(s.books)),
		selections: make(map[selectionKey]storedSelection, len(s.selections)),
		orders:     make(map[uuid.UUID]model.Order, len(s.orders)),
		loans:      make(map[uuid.UUID]model.Loan, len(s.loans)),
		seq:        s.seq,
	}
	for k, v := range s.books {
		c.books[k] = v
	}
	for k, v := range s.selections {
		c.selections[k] = v
	}
	for k, v := range s.orders {
		v.Lines = append([]model.OrderLine(nil), v.Lines...)
		c.orders[k] = v
	}
	for k, v := range s.loans {
		c.loans[k] = v
	}
	return c
}

// fakeStore is an in-memory Repository. A transaction holds the store lock for
// its whole duration and restores a snapshot on error, so transactions are serial.
type fakeStore struct {
	mu     sync.Mutex
	state  storeState
	failOn map[string]error
	txs    int
	// books in the order their counters were decremented, kept across rollbacks
	decrements []uuid.UUID
}

func newFakeStore(books ...model.Book) *fakeStore {
	st := &fakeStore{
		state: storeState{
			books:      map[uuid.UUID]model.Book{},
			selections: map[selectionKey]storedSelection{},
			orders:     map[uuid.UUID]model.Order{},
			loans:      map[uuid.UUID]model.Loan{},
		},
		failOn: map[string]error{},
	}
	for _, b := range books {
		st.state.books[b.BookUid] = b
	}
	return st
}

func (st *fakeStore) repo() repository.Repository { return &fakeRepo{st: st} }

func (st *fakeStore) book(uid uuid.UUID) model.Book {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.books[uid]
}

func (st *fakeStore) loan(uid uuid.UUID) model.Loan {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.loans[uid]
}

func (st *fakeStore) counts() (orders, loans, selections int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.state.orders), len(st.state.loans), len(st.state.selections)
}

func (st *fakeStore) decrementOrder() []uuid.UUID {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]uuid.UUID(nil), st.decrements...)
}

func (st *fakeStore) putLoan(l model.Loan) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state.loans[l.LoanUid] = l
}

type fakeRepo struct {
	st   *fakeStore
	inTx bool
}

var _ repository.Repository = (*fakeRepo)(nil)

func (r *fakeRepo) do(op string, fn func(s *storeState) error) error {
	if !r.inTx {
		r.st.mu.Lock()
		defer r.st.mu.Unlock()
	}
	if err := r.st.failOn[op]; err != nil {
		return err
	}
	return fn(&r.st.state)
}

func (r *fakeRepo) WithTx(ctx context.Context, fn func(repo repository.Repository) error) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.txs++
	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := r.st.state.clone()
	err := fn(&fakeRepo{st: r.st, inTx: true})
	if err == nil {
		err = r.st.failOn["Commit"]
	}
	if err != nil {
		r.st.state = snapshot
		return err
	}
	return nil
}

func (r *fakeRepo) GetBook(_ context.Context, bookUid uuid.UUID) (b model.Book, err error) {
	err = r.do("GetBook", func(s *storeState) error {
		var ok bool
		if b, ok = s.books[bookUid]; !ok {
			return errs.ErrNotFound
		}
		return nil
	})
	return b, err
}

func (r *fakeRepo) ListBooks(_ context.Context, page, size int) (out model.ListBooks, err error) {
	err = r.do("ListBooks", func(s *storeState) error {
		for _, b := range s.books {
			out.Items = append(out.Items, b)
		}
		sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].Title < out.Items[j].Title })
		out.Paging = model.Paging{Page: page, PageSize: size, TotalElements: len(out.Items)}
		return nil
	})
	return out, err
}

func (r *fakeRepo) DecrementStock(_ context.Context, bookUid uuid.UUID, quantity int) (ok bool, err error) {
	err = r.do("DecrementStock", func(s *storeState) error {
		r.st.decrements = append(r.st.decrements, bookUid)
		b, found := s.books[bookUid]
		if !found || b.StockQuantity < quantity {
			return nil
		}
		b.StockQuantity -= quantity
		s.books[bookUid] = b
		ok = true
		return nil
	})
	return ok, err
}

func (r *fakeRepo) DecrementBorrowable(_ context.Context, bookUid uuid.UUID, quantity int) (ok bool, err error) {
	err = r.do("DecrementBorrowable", func(s *storeState) error {
		r.st.decrements = append(r.st.decrements, bookUid)
		b, found := s.books[bookUid]
		if !found || b.AvailableForBorrowing < quantity {
			return nil
		}
		b.AvailableForBorrowing -= quantity
		s.books[bookUid] = b
		ok = true
		return nil
	})
	return ok, err
}

func (r *fakeRepo) IncrementStock(_ context.Context, bookUid uuid.UUID, quantity int) error {
	return r.do("IncrementStock", func(s *storeState) error {
		b, found := s.books[bookUid]
		if !found {
			return errs.ErrNotFound
		}
		b.StockQuantity += quantity
		s.books[bookUid] = b
		return nil
	})
}

func (r *fakeRepo) ListSelections(_ context.Context, userName string, mode model.Mode) (out []model.Selection, err error) {
	err = r.do("ListSelections", func(s *storeState) error {
		out = s.selectionsOf(userName, mode)
		return nil
	})
	return out, err
}

func (r *fakeRepo) LockSelections(_ context.Context, userName string, mode model.Mode) (out []model.Selection, err error) {
	err = r.do("LockSelections", func(s *storeState) error {
		out = s.selectionsOf(userName, mode)
		return nil
	})
	return out, err
}

func (s *storeState) selectionsOf(userName string, mode model.Mode) []model.Selection {
	type item struct {
		sel model.Selection
		seq int
	}
	var items []item
	for k, v := range s.selections {
		if k.user != userName || k.mode != mode {
			continue
		}
		b, ok := s.books[k.book]
		if !ok {
			continue
		}
		items = append(items, item{seq: v.seq, sel: model.Selection{
			UserName:              k.user,
			BookUid:               k.book,
			Mode:                  k.mode,
			Quantity:              v.quantity,
			Title:                 b.Title,
			Price:                 b.Price,
			DailyRate:             b.DailyRate,
			StockQuantity:         b.StockQuantity,
			AvailableForBorrowing: b.AvailableForBorrowing,
		}})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].seq < items[j].seq })
	out := make([]model.Selection, 0, len(items))
	for _, it := range items {
		out = append(out, it.sel)
	}
	return out
}

func (r *fakeRepo) AddSelection(_ context.Context, userName string, bookUid uuid.UUID, mode model.Mode, quantity int) error {
	return r.do("AddSelection", func(s *storeState) error {
		if _, ok := s.books[bookUid]; !ok {
			return errs.ErrNotFound
		}
		key := selectionKey{user: userName, book: bookUid, mode: mode}
		cur, exists := s.selections[key]
		switch {
		case !exists:
			s.seq++
			if mode == model.ModeBorrow {
				quantity = 1
			}
			s.selections[key] = storedSelection{quantity: quantity, seq: s.seq}
		case mode == model.ModePurchase:
			cur.quantity += quantity
			s.selections[key] = cur
		}
		return nil
	})
}

func (r *fakeRepo) RemoveSelection(_ context.Context, userName string, bookUid uuid.UUID, mode model.Mode) error {
	return r.do("RemoveSelection", func(s *storeState) error {
		key := selectionKey{user: userName, book: bookUid, mode: mode}
		if _, ok := s.selections[key]; !ok {
			return errs.ErrNotFound
		}
		delete(s.selections, key)
		return nil
	})
}

func (r *fakeRepo) ClearSelections(_ context.Context, userName string, mode model.Mode) error {
	return r.do("ClearSelections", func(s *storeState) error {
		for k := range s.selections {
			if k.user == userName && k.mode == mode {
				delete(s.selections, k)
			}
		}
		return nil
	})
}

func (r *fakeRepo) CreateOrder(_ context.Context, order model.Order) error {
	return r.do("CreateOrder", func(s *storeState) error {
		order.Lines = nil
		s.orders[order.OrderUid] = order
		return nil
	})
}

func (r *fakeRepo) AddOrderLine(_ context.Context, orderUid uuid.UUID, line model.OrderLine) error {
	return r.do("AddOrderLine", func(s *storeState) error {
		o, ok := s.orders[orderUid]
		if !ok {
			return errs.ErrNotFound
		}
		o.Lines = append(o.Lines, line)
		s.orders[orderUid] = o
		return nil
	})
}

func (r *fakeRepo) ListOrders(_ context.Context, userName string) (out []model.Order, err error) {
	err = r.do("ListOrders", func(s *storeState) error {
		for _, o := range s.orders {
			if o.UserName == userName {
				out = append(out, o)
			}
		}
		return nil
	})
	return out, err
}

func (r *fakeRepo) GetOrder(_ context.Context, userName string, orderUid uuid.UUID) (o model.Order, err error) {
	err = r.do("GetOrder", func(s *storeState) error {
		var ok bool
		if o, ok = s.orders[orderUid]; !ok || o.UserName != userName {
			o = model.Order{}
			return errs.ErrNotFound
		}
		return nil
	})
	return o, err
}

func (r *fakeRepo) CreateLoan(_ context.Context, loan model.Loan) error {
	return r.do("CreateLoan", func(s *storeState) error {
		s.loans[loan.LoanUid] = loan
		return nil
	})
}

func (r *fakeRepo) GetLoanForUpdate(_ context.Context, loanUid uuid.UUID) (l model.Loan, err error) {
	err = r.do("GetLoanForUpdate", func(s *storeState) error {
		var ok bool
		if l, ok = s.loans[loanUid]; !ok {
			return errs.ErrNotFound
		}
		return nil
	})
	return l, err
}

func (r *fakeRepo) ListLoans(_ context.Context, userName string) (out []model.Loan, err error) {
	err = r.do("ListLoans", func(s *storeState) error {
		for _, l := range s.loans {
			if l.UserName == userName {
				out = append(out, l)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].BorrowDate.After(out[j].BorrowDate) })
		return nil
	})
	return out, err
}

func (r *fakeRepo) MarkReturned(_ context.Context, loanUid uuid.UUID, returnedAt time.Time, totalFee decimal.Decimal) (ok bool, err error) {
	err = r.do("MarkReturned", func(s *storeState) error {
		l, found := s.loans[loanUid]
		if !found || l.Status != model.LoanActive {
			return nil
		}
		l.Status = model.LoanReturned
		l.ActualReturnDate = &returnedAt
		l.TotalFee = &totalFee
		s.loans[loanUid] = l
		ok = true
		return nil
	})
	return ok, err
}

func (r *fakeRepo) ExtendLoan(_ context.Context, loanUid uuid.UUID, expectedReturnDate time.Time) (ok bool, err error) {
	err = r.do("ExtendLoan", func(s *storeState) error {
		l, found := s.loans[loanUid]
		if !found || l.Status != model.LoanActive {
			return nil
		}
		l.ExpectedReturnDate = expectedReturnDate
		s.loans[loanUid] = l
		ok = true
		return nil
	})
	return ok, err
}
