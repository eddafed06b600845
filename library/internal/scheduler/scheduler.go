// Package scheduler runs periodic catalog jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Config struct {
	// OverdueSchedule is a standard 5-field cron spec; empty disables the sweep.
	OverdueSchedule string        `envconfig:"OVERDUE_CRON" default:"0 7 * * *"`
	JobTimeout      time.Duration `envconfig:"OVERDUE_JOB_TIMEOUT" default:"1m"`
}

type OverdueSweeper interface {
	SweepOverdue(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func New(cfg Config, sweeper OverdueSweeper, log *zap.Logger) (*Scheduler, error) {
	log = log.Named("cron")
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	s := &Scheduler{cron: c, log: log}
	if cfg.OverdueSchedule == "" {
		return s, nil
	}
	_, err := c.AddFunc(cfg.OverdueSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.JobTimeout)
		defer cancel()
		n, err := sweeper.SweepOverdue(ctx)
		if err != nil {
			log.Error("overdue sweep", zap.Error(err))
			return
		}
		log.Info("overdue sweep", zap.Int("overdue", n))
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("cron stop", zap.Error(ctx.Err()))
	}
}
