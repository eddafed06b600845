package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	EventsTopic = "catalog.events"
	LoansTopic  = "catalog.loans"

	LoansConsumerGroup = "catalog-loans"
)

type Config struct {
	Addrs        []string      `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	RetryBackoff time.Duration `yaml:"retryBackoff" envconfig:"KAFKA_RETRY_BACKOFF" default:"1s"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume joins the group until ctx is done or the group is closed.
// A session that ends in error is rejoined after backoff.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, backoff time.Duration, log *zap.Logger, topics ...string) {
	for {
		err := group.Consume(ctx, topics, handler)
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			continue
		}
		log.Error("group.Consume", zap.Error(err), zap.Strings("topics", topics))
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}
