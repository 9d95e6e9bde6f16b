package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/bookstore-service/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Type string

const (
	OrderPlaced  Type = "order.placed"
	LoanIssued   Type = "loan.issued"
	LoanExtended Type = "loan.extended"
	LoanReturned Type = "loan.returned"
)

type Event struct {
	Type       Type             `json:"type"`
	UserName   string           `json:"userName"`
	OrderUid   *uuid.UUID       `json:"orderUid,omitempty"`
	LoanUid    *uuid.UUID       `json:"loanUid,omitempty"`
	BookUid    *uuid.UUID       `json:"bookUid,omitempty"`
	Quantity   int              `json:"quantity,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	DueDate    *time.Time       `json:"dueDate,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

// NewKafkaPublisher sends events keyed by user name so that one user's events stay ordered.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
		log:      log.Named("publisher"),
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.UserName),
		Value: sarama.ByteEncoder(data),
	}
	return p.cb.Call(func() error {
		return p.send(ctx, msg, evt.Type)
	})
}

// send gives up when ctx is done. SyncProducer ignores contexts, so the
// message may still be delivered after that.
func (p *kafkaPublisher) send(ctx context.Context, msg *sarama.ProducerMessage, typ Type) error {
	done := make(chan error, 1)
	go func() {
		partition, offset, err := p.producer.SendMessage(msg)
		if err == nil {
			p.log.Debug("event sent",
				zap.String("type", string(typ)),
				zap.Int32("partition", partition),
				zap.Int64("offset", offset))
		}
		done <- err
	}()

	select {
	case err := <-done:
		return errors.Wrap(err, "SendMessage")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "SendMessage")
	}
}

type nopPublisher struct{}

func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, Event) error { return nil }
