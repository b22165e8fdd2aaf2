package wellness

import (
	"math/rand"
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// Score bounds. Every update clamps into this range.
const (
	MinScore = 0
	MaxScore = 100
)

// Delta ranges per sentiment. Positive and negative pulls are mirrored;
// neutral applies a small jitter so quiet stretches drift instead of
// flatlining.
const (
	positiveDeltaMin = 3
	positiveDeltaMax = 10
	negativeDeltaMin = 3
	negativeDeltaMax = 10
	neutralJitter    = 2
)

// Updater moves a wellness score in response to a sentiment signal.
type Updater struct {
	rng *rand.Rand
}

// NewUpdater returns an Updater drawing deltas from rng. A nil rng gets a
// time-seeded source.
func NewUpdater(rng *rand.Rand) *Updater {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Updater{rng: rng}
}

// Update returns the next score for a sentiment signal. Unknown sentiments
// leave the score untouched.
func (u *Updater) Update(previous int, s types.Sentiment) int {
	next := previous
	switch s {
	case types.SentimentPositive:
		next += positiveDeltaMin + u.rng.Intn(positiveDeltaMax-positiveDeltaMin+1)
	case types.SentimentNegative:
		next -= negativeDeltaMin + u.rng.Intn(negativeDeltaMax-negativeDeltaMin+1)
	case types.SentimentNeutral:
		next += u.rng.Intn(2*neutralJitter+1) - neutralJitter
	}
	return Clamp(next)
}

// Clamp bounds a score to [MinScore, MaxScore].
func Clamp(score int) int {
	switch {
	case score < MinScore:
		return MinScore
	case score > MaxScore:
		return MaxScore
	default:
		return score
	}
}
