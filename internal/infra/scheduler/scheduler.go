// Package scheduler runs background jobs on cron specs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"car-rental-engine/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 2 * time.Minute

// CompletionSweeper moves confirmed bookings whose window has ended to completed.
type CompletionSweeper interface {
	CompleteFinished(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	sweeper CompletionSweeper
	logger  *slog.Logger
}

func New(spec string, sweeper CompletionSweeper, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		sweeper: sweeper,
		logger:  logger,
	}
	if _, err := s.cron.AddFunc(spec, s.runSweep); err != nil {
		return nil, errs.Wrap(err, "invalid completion sweep spec "+spec)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	n, err := s.sweeper.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("completion sweep failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("completion sweep finished", "completed", n)
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
