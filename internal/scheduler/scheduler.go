package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// tickInterval is fixed: the notifier is evaluated once per minute,
// independent of wall-clock alignment.
const tickInterval = 60 * time.Second

// Ticker is the minimal interface the scheduler drives on every interval.
// service.Notifier implements it.
type Ticker interface {
	Tick(nowUTC time.Time)
}

// Scheduler runs the notification poll loop.
type Scheduler struct {
	notifier Ticker
	log      *zap.Logger
}

func New(notifier Ticker, log *zap.Logger) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		log:      log,
	}
}

// Run starts the loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started", zap.Duration("interval", tickInterval))

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.notifier.Tick(time.Now().UTC())
		}
	}
}
