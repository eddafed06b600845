package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	defaultRetries      = 3
	defaultRetryBackoff = 500 * time.Millisecond
)

// Consumer applies circulation-desk loan messages. Malformed or rejected
// messages are logged and committed. A retryable failure is retried with
// backoff; if it persists the claim stops without marking the message, so the
// next session starts again from its offset.
type Consumer struct {
	loans   LoanApplier
	timeout time.Duration
	retries int
	backoff time.Duration
	log     *zap.Logger
}

type ConsumerOption func(*Consumer)

// WithRetry sets how many times a retryable failure is retried and the
// initial pause between attempts, doubled after each one.
func WithRetry(retries int, backoff time.Duration) ConsumerOption {
	return func(c *Consumer) {
		c.retries, c.backoff = retries, backoff
	}
}

func NewConsumer(loans LoanApplier, timeout time.Duration, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		loans:   loans,
		timeout: timeout,
		retries: defaultRetries,
		backoff: defaultRetryBackoff,
		log:     log.Named("consumer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			if !consumer.handle(session.Context(), message) {
				// Offsets are cumulative: marking anything past this message
				// would commit it. Ending the claim ends the session.
				consumer.log.Warn("leaving message for redelivery",
					zap.String("topic", message.Topic), zap.Int32("partition", message.Partition), zap.Int64("offset", message.Offset))
				return nil
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle reports whether the message is done with.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) bool {
	var msg model.LoanMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		consumer.log.Error("json.Unmarshal", zap.Error(err), zap.Int64("offset", message.Offset))
		return true
	}
	backoff := consumer.backoff
	for attempt := 0; ; attempt++ {
		err := consumer.apply(ctx, msg)
		if err == nil {
			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			return true
		}
		consumer.log.Error("ApplyLoanMessage", zap.Error(err), zap.Int("attempt", attempt),
			zap.Stringer("instance", msg.InstanceID), zap.String("action", string(msg.Action)))
		if !errs.Retryable(err) {
			return true
		}
		if attempt >= consumer.retries {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

func (consumer *Consumer) apply(ctx context.Context, msg model.LoanMessage) error {
	if consumer.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, consumer.timeout)
		defer cancel()
	}
	return consumer.loans.ApplyLoanMessage(ctx, msg)
}
