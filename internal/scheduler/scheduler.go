package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Hardik699/Hanuram1-sub001/internal/config"
	"github.com/Hardik699/Hanuram1-sub001/internal/repository/mongodb"
	"github.com/Hardik699/Hanuram1-sub001/pkg/clients/notify"
)

// MonthCloser closes the operating cost books for a month.
type MonthCloser interface {
	CloseMonth(ctx context.Context, month, year int) (string, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	closer   MonthCloser
	notifier notify.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance. notifier may be nil.
func NewScheduler(cfg config.SchedulerConfig, closer MonthCloser, notifier notify.Client, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		spec:     cfg.MonthCloseCron,
		closer:   closer,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().In(loc) },
	}, nil
}

// Start registers the month-close job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("month_close_cron", s.spec))

	if _, err := s.cron.AddFunc(s.spec, s.closePreviousMonth); err != nil {
		return fmt.Errorf("schedule month close: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) closePreviousMonth() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	month, year := previousMonth(s.now())
	if err := s.CloseMonth(ctx, month, year); err != nil {
		s.logger.Error("month close failed", zap.Int("month", month), zap.Int("year", year), zap.Error(err))
	}
}

// CloseMonth closes one month and sends the summary. A month without an
// entry is skipped.
func (s *Scheduler) CloseMonth(ctx context.Context, month, year int) error {
	logger := s.logger.With(zap.Int("month", month), zap.Int("year", year))
	logger.Info("closing operating cost month")

	summary, err := s.closer.CloseMonth(ctx, month, year)
	if errors.Is(err, mongodb.ErrNotFound) {
		logger.Info("no operating cost entry, skipping month close")
		return nil
	}
	if err != nil {
		return err
	}

	if s.notifier == nil {
		logger.Info("month closed", zap.String("summary", summary))
		return nil
	}

	if err := s.notifier.Send(ctx, summary); err != nil {
		return fmt.Errorf("send month close summary: %w", err)
	}
	logger.Info("month close summary sent")
	return nil
}

func previousMonth(now time.Time) (int, int) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := first.AddDate(0, -1, 0)
	return int(prev.Month()), prev.Year()
}
