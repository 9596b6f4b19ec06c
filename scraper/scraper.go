// Package scraper invokes the external Node.js collector that rewrites the
// backing codes file. The collector owns all writes; this package only
// reports whether an invocation finished cleanly.
package scraper

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Refresher triggers one refresh of the backing codes file. Refresh never
// panics or returns an error; every failure mode is logged and collapsed
// into false.
type Refresher interface {
	Refresh() bool
}

// Scraper runs the collector command with a bounded timeout
type Scraper struct {
	Command []string
	Dir     string
	Timeout time.Duration

	group singleflight.Group
}

// New returns a Scraper for the given collector invocation
func New(command []string, dir string, timeout time.Duration) *Scraper {
	return &Scraper{
		Command: command,
		Dir:     dir,
		Timeout: timeout,
	}
}

// Refresh runs the collector and reports whether it exited cleanly within
// the timeout. Concurrent callers (the hourly cycle and manual triggers)
// are collapsed into a single run that shares its result, so the collector
// never races against itself over the backing file.
func (s *Scraper) Refresh() bool {
	v, _, shared := s.group.Do("refresh", func() (interface{}, error) {
		return s.run(), nil
	})
	if shared {
		zap.S().Debug("refresh already in flight, sharing result")
	}
	return v.(bool)
}

func (s *Scraper) run() bool {
	if len(s.Command) == 0 {
		zap.S().Error("no scraper command configured")
		return false
	}

	zap.S().Infow("running code scraper", "command", s.Command, "dir", s.Dir)

	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Command[0], s.Command[1:]...)
	cmd.Dir = s.Dir

	out, err := cmd.CombinedOutput()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		zap.S().Errorw("scraper timed out", "timeout", s.Timeout)
		return false
	}
	if err != nil {
		zap.S().Errorw("scraper failed", "error", err, "output", string(out))
		return false
	}

	zap.S().Infow("scraper completed successfully", "output", string(out))
	return true
}
