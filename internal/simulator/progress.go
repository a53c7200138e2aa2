package simulator

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Progress logs periodic completion updates for a run. Observe is expected
// to be called from a single goroutine (the result collector); throttling is
// wall-clock based so long runs report steadily regardless of game cost.
type Progress struct {
	clock      quartz.Clock
	logger     *log.Logger
	total      int
	interval   time.Duration
	done       int
	lastReport time.Time
}

// NewProgress creates a progress monitor for total games, reporting at most
// once per interval. A zero interval disables reporting.
func NewProgress(clock quartz.Clock, logger *log.Logger, total int, interval time.Duration) *Progress {
	return &Progress{
		clock:      clock,
		logger:     logger,
		total:      total,
		interval:   interval,
		lastReport: clock.Now(),
	}
}

// Observe records one completed game and emits a progress line when the
// reporting interval has elapsed.
func (p *Progress) Observe() {
	p.done++
	if p.interval <= 0 || p.done == p.total {
		return
	}
	if p.clock.Since(p.lastReport) < p.interval {
		return
	}
	p.lastReport = p.clock.Now()
	p.logger.Info("simulation progress",
		"completed", p.done,
		"total", p.total,
		"pct", fmt100(p.done, p.total))
}

// Done returns how many games have been observed.
func (p *Progress) Done() int {
	return p.done
}

func fmt100(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}
