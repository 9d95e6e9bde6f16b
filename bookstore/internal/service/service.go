package service

import (
	"context"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/config"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/errs"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/events"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/model"
	"github.com/Astemirdum/bookstore-service/bookstore/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ExtensionWindow is added to the expected return date on every extension.
	ExtensionWindow = 7 * 24 * time.Hour

	publishTimeout = 5 * time.Second
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	pub     events.Publisher
	lending config.Lending
	now     func() time.Time
}

type Option func(s *Service)

// WithClock replaces time.Now, tests use it to pin loan dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithPublisher(pub events.Publisher) Option {
	return func(s *Service) {
		s.pub = pub
	}
}

func NewService(repo repository.Repository, lending config.Lending, log *zap.Logger, opts ...Option) *Service {
	if lending.DefaultDays < 1 {
		lending.DefaultDays = 7
	}
	if lending.MaxDays < lending.DefaultDays {
		lending.MaxDays = lending.DefaultDays
	}
	s := &Service{
		log:     log.Named("service"),
		repo:    repo,
		pub:     events.NewNopPublisher(),
		lending: lending,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) ListBooks(ctx context.Context, page, size int) (model.ListBooks, error) {
	books, err := s.repo.ListBooks(ctx, page, size)
	if err != nil {
		return model.ListBooks{}, errs.Persistence("list books", err)
	}
	return books, nil
}

func (s *Service) GetBook(ctx context.Context, bookUid uuid.UUID) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, bookUid)
	if err != nil {
		return model.Book{}, errs.Persistence("get book", err)
	}
	return book, nil
}

// BorrowDays resolves the requested borrowing days: zero means the default.
func (s *Service) BorrowDays(days int) (int, error) {
	if days == 0 {
		return s.lending.DefaultDays, nil
	}
	if days < 1 || days > s.lending.MaxDays {
		return 0, errs.ErrInvalidBorrowDays
	}
	return days, nil
}

// finish logs and classifies an operation error.
func (s *Service) finish(op string, err error, fields ...zap.Field) error {
	if err == nil {
		return nil
	}
	if errs.IsBusiness(err) {
		s.log.Info(op+" rejected", append(fields, zap.Error(err))...)
		return err
	}
	s.log.Error(op+" failed", append(fields, zap.Error(err))...)
	return errs.Persistence(op, err)
}

// publish is best effort: the state change is already committed.
func (s *Service) publish(ctx context.Context, evt events.Event) {
	evt.OccurredAt = s.now().UTC()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.pub.Publish(ctx, evt); err != nil {
		s.log.Warn("publish event", zap.String("type", string(evt.Type)), zap.Error(err))
	}
}
