package scheduler

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Deaquay/shiftcodes/scraper"
)

// Scheduler owns the periodic code refresh cycle. It is started once at
// startup and runs for the lifetime of the process; a failed refresh logs
// and waits for the next tick.
type Scheduler struct {
	cron       *cron.Cron
	refresher  scraper.Refresher
	warmup     time.Duration
	interval   time.Duration
	instanceID string

	warmupTimer *time.Timer
}

// New creates a new scheduler instance
func New(refresher scraper.Refresher, warmup, interval time.Duration) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		refresher:  refresher,
		warmup:     warmup,
		interval:   interval,
		instanceID: instanceID,
	}
}

// Start arms the warm-up timer. Once it fires the first refresh runs and the
// repeating cycle begins.
func (s *Scheduler) Start() {
	s.warmupTimer = time.AfterFunc(s.warmup, func() {
		s.runRefresh()

		_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.runRefresh)
		if err != nil {
			zap.S().Errorw("failed to register refresh job", "error", err)
			return
		}
		s.cron.Start()
	})

	zap.S().Infow("Code refresh scheduler started",
		"warmup", s.warmup,
		"interval", s.interval,
		"instance", s.instanceID,
	)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if s.warmupTimer != nil {
		s.warmupTimer.Stop()
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Code refresh scheduler stopped")
}

func (s *Scheduler) runRefresh() {
	zap.S().Infow("Running periodic code update", "instance", s.instanceID)

	if s.refresher.Refresh() {
		zap.S().Info("Periodic update completed successfully")
	} else {
		zap.S().Warn("Periodic update failed")
	}
}
