package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
	Reset()
}

type Config struct {
	// Window is the number of most recent calls tracked while closed.
	Window int `envconfig:"CB_WINDOW" default:"10"`
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `envconfig:"CB_TIMEOUT" default:"30s"`
	// FailureRatio opens the breaker once failures/Window reaches it.
	FailureRatio float64 `envconfig:"CB_FAILURE_RATIO" default:"0.5"`
	// RecoveryCalls consecutive successes in half-open close the breaker.
	RecoveryCalls int `envconfig:"CB_RECOVERY_CALLS" default:"3"`
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    State
	openedAt time.Time
	window   []bool // true marks a failed call
	pos      int
	success  int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 10
	}
	if cfg.RecoveryCalls <= 0 {
		cfg.RecoveryCalls = 1
	}
	return &circuitBreaker{
		cfg:    cfg,
		now:    time.Now,
		state:  Closed,
		window: make([]bool, cfg.Window),
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.cfg.Timeout {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.success = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.success++
		if cb.success >= cb.cfg.RecoveryCalls {
			cb.reset()
		}
		return nil
	}

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.window)

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.window)) >= cb.cfg.FailureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.success = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.success = 0
	cb.pos = 0
	cb.state = Closed
}
