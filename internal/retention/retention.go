package retention

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"forklift_tracker/internal/models"
)

// Horizon is how long raw telemetry is kept. The previous deployment
// enforced this with a MongoDB TTL index; on Postgres a periodic sweep
// does the same job. Aggregates never assume history beyond this.
const Horizon = 90 * 24 * time.Hour

// DefaultInterval is how often the sweep runs.
const DefaultInterval = time.Hour

// CutoffAt returns the oldest timestamp still retained as of now.
func CutoffAt(now time.Time) time.Time {
	return now.Add(-Horizon)
}

// Sweeper deletes telemetry rows past the retention horizon.
type Sweeper struct {
	db       *gorm.DB
	interval time.Duration
}

func NewSweeper(db *gorm.DB, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{db: db, interval: interval}
}

// Run sweeps once immediately, then on every tick until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-ctx.Done():
			return
		}
	}
}

func (s *Sweeper) sweep() {
	cutoff := CutoffAt(time.Now())
	res := s.db.Unscoped().Where("timestamp < ?", cutoff).Delete(&models.Telemetry{})
	if res.Error != nil {
		logrus.WithError(res.Error).Error("telemetry retention sweep failed")
		return
	}
	if res.RowsAffected > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted": res.RowsAffected,
			"cutoff":  cutoff.Format(time.RFC3339),
		}).Info("swept expired telemetry")
	}
}
