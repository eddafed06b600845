// Package events publishes catalog domain events to kafka.
package events

import (
	"context"
	"encoding/json"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Enqueuer interface {
	Enqueue(topic string, key string, v any) error
}

func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{producer: producer}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "SendMessage")
	}
	return nil
}

// Publisher sends events through a circuit breaker. A failed or refused send
// is logged and dropped; it never reaches the caller.
type Publisher struct {
	q     Enqueuer
	cb    circuit_breaker.CircuitBreaker
	topic string
	log   *zap.Logger
}

func NewPublisher(q Enqueuer, cb circuit_breaker.CircuitBreaker, topic string, log *zap.Logger) *Publisher {
	return &Publisher{q: q, cb: cb, topic: topic, log: log.Named("events")}
}

func (p *Publisher) Publish(_ context.Context, e model.Event) {
	err := p.cb.Call(func() error {
		return p.q.Enqueue(p.topic, e.ID.String(), e)
	})
	switch {
	case err == nil:
		p.log.Debug("published", zap.String("type", string(e.Type)), zap.Stringer("id", e.ID))
	case errors.Is(err, circuit_breaker.ErrOpen):
		p.log.Warn("event dropped, breaker open", zap.String("type", string(e.Type)), zap.Stringer("id", e.ID))
	default:
		p.log.Error("publish", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

// LogPublisher only logs events; used when no brokers are configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log.Named("events")}
}

func (p *LogPublisher) Publish(_ context.Context, e model.Event) {
	p.log.Info("event", zap.String("type", string(e.Type)), zap.String("user", e.UserName), zap.Stringer("id", e.ID))
}
