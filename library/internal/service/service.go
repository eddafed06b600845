package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	libraryRepo "github.com/Astemirdum/library-catalog/library/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/validate"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	OperationTimeout time.Duration `envconfig:"OPERATION_TIMEOUT" default:"5s"`
	ImportTimeout    time.Duration `envconfig:"IMPORT_TIMEOUT" default:"2m"`
	// ImportWorkers > 1 stores import rows concurrently.
	ImportWorkers int `envconfig:"IMPORT_WORKERS" default:"1"`
	// DefaultLanguage is matched case-insensitively as a substring of language names.
	DefaultLanguage string `envconfig:"IMPORT_DEFAULT_LANGUAGE" default:"EN"`
	// MaxRenewalDays caps how far ahead a due date may be set; 0 disables the cap.
	MaxRenewalDays int `envconfig:"MAX_RENEWAL_DAYS" default:"28"`
}

func DefaultConfig() Config {
	return Config{
		OperationTimeout: 5 * time.Second,
		ImportTimeout:    2 * time.Minute,
		ImportWorkers:    1,
		DefaultLanguage:  "EN",
		MaxRenewalDays:   28,
	}
}

// Publisher receives domain events after the mutation that caused them committed.
type Publisher interface {
	Publish(ctx context.Context, event model.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.Event) {}

type Service struct {
	log       *zap.Logger
	repo      libraryRepo.Repository
	events    Publisher
	validator *validate.CustomValidator
	cfg       Config
	now       func() time.Time
}

type Option func(*Service)

func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg }
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		events:    nopPublisher{},
		validator: validate.NewCustomValidator(),
		cfg:       DefaultConfig(),
		now:       time.Now,
	}
	for _, op := range opts {
		op(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.Today(s.now())
}

func (s *Service) publish(ctx context.Context, typ model.EventType, userName string, payload any) {
	s.events.Publish(ctx, model.Event{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: s.now().UTC(),
		UserName:   userName,
		Payload:    payload,
	})
}

// call runs fn under the per-operation deadline and reports an expired
// deadline as errs.ErrTimeout.
func call[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	res, err := fn(ctx)
	if err != nil {
		return res, asTimeout(ctx, err)
	}
	return res, nil
}

func asTimeout(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		if errors.Is(err, errs.ErrTimeout) {
			return err
		}
		return errors.Wrap(errs.ErrTimeout, err.Error())
	}
	return err
}
