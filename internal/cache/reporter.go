package cache

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

// Reporter periodically logs cache statistics. It only reads Stats, so it
// never changes the lazy expiration behaviour of the cache.
type Reporter struct {
	cache    *Cache
	logger   *slog.Logger
	interval time.Duration
	cron     *gocron.Scheduler
}

// NewReporter creates a reporter. An interval <= 0 makes Start a no-op.
func NewReporter(c *Cache, interval time.Duration, logger *slog.Logger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		cache:    c,
		logger:   logger,
		interval: interval,
		cron:     gocron.NewScheduler(time.UTC),
	}
}

// Start schedules the periodic report.
func (r *Reporter) Start() error {
	if r.interval <= 0 {
		return nil
	}

	if _, err := r.cron.Every(r.interval).Do(r.Report); err != nil {
		return fmt.Errorf("failed to schedule cache stats report: %w", err)
	}

	r.cron.StartAsync()
	r.logger.Info("cache stats reporter started", "interval", r.interval)
	return nil
}

// Stop stops the scheduler.
func (r *Reporter) Stop() {
	r.cron.Stop()
}

// Report logs one line per cache class.
func (r *Reporter) Report() {
	for _, st := range r.cache.Stats() {
		r.logger.Info("cache stats",
			"class", st.Class,
			"ttl", st.TTL,
			"total", st.Total,
			"valid", st.Valid,
			"expired", st.Expired)
	}
}
