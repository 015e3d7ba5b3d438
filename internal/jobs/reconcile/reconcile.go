package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"gorm.io/gorm"
)

// Job lifts expired bans on a fixed cadence.
//
// It restores account access only: content blinded during the ban stays
// blinded until a moderator decides otherwise. Bans without an end date
// are admin-issued and indefinite; the predicate never matches them.
type Job struct {
	db       *gorm.DB
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time

	// mu enforces skip-if-running across ticks.
	mu sync.Mutex
}

func New(db *gorm.DB, interval, timeout time.Duration) *Job {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Job{
		db:       db,
		interval: interval,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Run performs one reconciliation pass and returns how many bans it
// lifted. One UPDATE flips every matching user, so re-running in the
// same window finds nothing left to flip.
func (j *Job) Run(ctx context.Context) (int64, error) {
	res := j.db.WithContext(ctx).
		Model(&models.User{}).
		Where("status = ? AND ban_end_date IS NOT NULL AND ban_end_date <= ?",
			models.UserStatusBanned, j.now()).
		Updates(map[string]interface{}{
			"status":       models.UserStatusActive,
			"ban_end_date": nil,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("reconcile expired bans: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Start launches the ticker loop. Closing done stops it.
func (j *Job) Start(done chan struct{}) {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				j.tick()
			case <-done:
				return
			}
		}
	}()
}

func (j *Job) tick() {
	if !j.mu.TryLock() {
		slog.Warn("ban reconciliation still running, skipping tick")
		return
	}
	defer j.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	lifted, err := j.Run(ctx)
	if err != nil {
		// No immediate retry: a missed tick just means a late unban.
		slog.Error("ban reconciliation failed", "error", err)
		return
	}
	if lifted > 0 {
		slog.Info("ban reconciliation completed", "lifted", lifted)
	}
}
