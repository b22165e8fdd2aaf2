package mood

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/solacehq/solace-core/internal/types"
	"github.com/solacehq/solace-core/internal/wellness"
)

// SnapshotRepo defines snapshot fetch and upsert behavior.
type SnapshotRepo interface {
	Get(ctx context.Context, userID string) (*types.MoodSnapshot, error)
	Upsert(ctx context.Context, userID string, snap types.MoodSnapshot) error
}

// GoalMarker completes daily goals as a side effect of mood tracking.
type GoalMarker interface {
	CompleteBySlug(ctx context.Context, userID, slug string) error
}

// Service runs the mood pipeline for one inbound message: classify, move
// the wellness score, persist the day's snapshot.
type Service struct {
	classifier   *Classifier
	scores       *wellness.Updater
	snapshots    SnapshotRepo
	goals        GoalMarker
	defaultScore int
	now          func() time.Time
}

// NewService returns a new mood service. goals may be nil when goal
// tracking is disabled.
func NewService(classifier *Classifier, scores *wellness.Updater, snapshots SnapshotRepo, goals GoalMarker, defaultScore int) *Service {
	return &Service{
		classifier:   classifier,
		scores:       scores,
		snapshots:    snapshots,
		goals:        goals,
		defaultScore: defaultScore,
		now:          time.Now,
	}
}

// Result couples a classification with the snapshot it produced.
type Result struct {
	Classification types.ClassificationResult
	Snapshot       types.MoodSnapshot
	// Updated reports whether the mood fields moved. Below-threshold
	// results only count the message.
	Updated bool
}

// Process classifies one message and persists its effect on today's
// snapshot.
func (s *Service) Process(ctx context.Context, userID, text string, hint types.Sentiment) (*Result, error) {
	if s == nil || s.classifier == nil || s.scores == nil {
		return nil, fmt.Errorf("mood service not configured")
	}
	if s.snapshots == nil {
		return nil, fmt.Errorf("snapshot repo is nil")
	}

	res := s.classifier.Classify(text, hint)

	now := s.now().UTC()
	day := types.DayOf(now)

	prev, err := s.snapshots.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mood snapshot: %w", err)
	}

	count := 1
	if prev != nil && types.SameDay(prev.Date, day) {
		count = prev.MessageCount + 1
	}

	prevScore := s.defaultScore
	if prev != nil && prev.WellnessScore != nil {
		prevScore = *prev.WellnessScore
	}

	snap := types.MoodSnapshot{
		Date:         day,
		MessageCount: count,
		Timestamp:    now,
	}

	updated := s.classifier.ShouldUpdate(res)
	if updated {
		score := s.scores.Update(prevScore, res.Sentiment)
		snap.MoodTag = res.MoodTag
		snap.MoodName = res.MoodName
		snap.Sentiment = res.Sentiment
		snap.WellnessScore = &score
	} else if prev != nil && types.SameDay(prev.Date, day) {
		snap.MoodTag = prev.MoodTag
		snap.MoodName = prev.MoodName
		snap.Sentiment = prev.Sentiment
		snap.WellnessScore = prev.WellnessScore
	} else {
		// First message of the day with no usable signal: a neutral day
		// carrying the score forward.
		score := prevScore
		snap.MoodTag = types.MoodTagNeutral
		snap.MoodName = types.MoodNeutral
		snap.Sentiment = types.SentimentNeutral
		snap.WellnessScore = &score
	}

	if err := s.snapshots.Upsert(ctx, userID, snap); err != nil {
		return nil, fmt.Errorf("failed to upsert mood snapshot: %w", err)
	}

	if updated && s.goals != nil {
		if err := s.goals.CompleteBySlug(ctx, userID, types.GoalSlugMoodCheckIn); err != nil {
			slog.Warn("failed to complete mood check-in goal", "user_id", userID, "error", err)
		}
	}

	return &Result{Classification: res, Snapshot: snap, Updated: updated}, nil
}
