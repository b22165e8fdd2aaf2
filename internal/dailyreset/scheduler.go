package dailyreset

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// Defaults is everything a fresh day starts with.
type Defaults struct {
	Snapshot types.MoodSnapshot
	Goals    []types.Goal
}

// ResetStore applies one day's reset atomically: claim the day by advancing
// the last-reset marker only while it is stale, and perform the default
// writes in the same transaction. It reports false when the day was already
// claimed, and must leave the marker stale on failure so the next check
// retries.
type ResetStore interface {
	ApplyReset(ctx context.Context, userID string, day time.Time, defaults Defaults) (bool, error)
}

// Scheduler drives the stale-to-fresh transition at day boundaries.
type Scheduler struct {
	store        ResetStore
	defaultScore int
}

// NewScheduler returns a Scheduler writing defaultScore into fresh days.
func NewScheduler(store ResetStore, defaultScore int) *Scheduler {
	return &Scheduler{store: store, defaultScore: defaultScore}
}

// Check performs the daily reset if now opens a new calendar day for the
// user, and reports whether this call performed it. Re-invoking on the same
// day is a no-op. History is never touched; only the current day's snapshot
// and goal slate are replaced.
func (s *Scheduler) Check(ctx context.Context, userID string, now time.Time) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("reset store is nil")
	}

	now = now.UTC()
	day := types.DayOf(now)
	score := s.defaultScore
	defaults := Defaults{
		Snapshot: types.MoodSnapshot{
			Date:          day,
			MoodTag:       types.MoodTagNeutral,
			MoodName:      types.MoodNeutral,
			Sentiment:     types.SentimentNeutral,
			WellnessScore: &score,
			Timestamp:     now,
		},
		Goals: FreshGoals(now),
	}

	applied, err := s.store.ApplyReset(ctx, userID, day, defaults)
	if err != nil {
		slog.Warn("daily reset failed, retrying on next check", "user_id", userID, "day", types.DayKey(day), "error", err)
		return false, fmt.Errorf("failed to apply daily reset: %w", err)
	}
	if applied {
		slog.Info("daily reset applied", "user_id", userID, "day", types.DayKey(day))
	}
	return applied, nil
}
