package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEnqueuer struct {
	mu    sync.Mutex
	fail  bool
	calls int
	sent  [][]byte
}

func (f *fakeEnqueuer) Enqueue(topic, key string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.fail {
		return errors.New("broker down")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.sent = append(f.sent, data)
	return nil
}

func TestPublisher(t *testing.T) {
	t.Parallel()
	q := &fakeEnqueuer{}
	cb := circuit_breaker.New(circuit_breaker.Config{Window: 2, Timeout: time.Hour, FailureRatio: 1, RecoveryCalls: 1})
	p := NewPublisher(q, cb, "catalog.events", zap.NewNop())

	e := model.Event{ID: uuid.New(), Type: model.EventLoanRenewed, UserName: "marian"}
	p.Publish(context.Background(), e)
	require.Len(t, q.sent, 1)
	require.Contains(t, string(q.sent[0]), `"type":"loan.renewed"`)

	q.fail = true
	p.Publish(context.Background(), e)
	p.Publish(context.Background(), e)
	require.Equal(t, circuit_breaker.Open, cb.State())

	// open breaker short-circuits the broker
	p.Publish(context.Background(), e)
	require.Equal(t, 3, q.calls)
}
