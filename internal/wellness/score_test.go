package wellness

import (
	"math/rand"
	"testing"

	"github.com/solacehq/solace-core/internal/types"
)

func newTestUpdater(seed int64) *Updater {
	return NewUpdater(rand.New(rand.NewSource(seed)))
}

func TestUpdatePositiveStaysInDeltaRange(t *testing.T) {
	u := newTestUpdater(1)
	for i := 0; i < 200; i++ {
		got := u.Update(70, types.SentimentPositive)
		if got < 73 || got > 80 {
			t.Fatalf("expected score in [73, 80], got %d", got)
		}
	}
}

func TestUpdateNegativeStaysInDeltaRange(t *testing.T) {
	u := newTestUpdater(2)
	for i := 0; i < 200; i++ {
		got := u.Update(70, types.SentimentNegative)
		if got < 60 || got > 67 {
			t.Fatalf("expected score in [60, 67], got %d", got)
		}
	}
}

func TestUpdateNeutralJitters(t *testing.T) {
	u := newTestUpdater(3)
	for i := 0; i < 200; i++ {
		got := u.Update(70, types.SentimentNeutral)
		if got < 68 || got > 72 {
			t.Fatalf("expected score in [68, 72], got %d", got)
		}
	}
}

func TestUpdateSaturatesAtCeiling(t *testing.T) {
	u := newTestUpdater(4)
	score := 95
	for i := 0; i < 50; i++ {
		score = u.Update(score, types.SentimentPositive)
		if score > MaxScore {
			t.Fatalf("expected score capped at %d, got %d", MaxScore, score)
		}
	}
	if score != MaxScore {
		t.Fatalf("expected repeated positive updates to saturate at %d, got %d", MaxScore, score)
	}
}

func TestUpdateSaturatesAtFloor(t *testing.T) {
	u := newTestUpdater(5)
	score := 5
	for i := 0; i < 50; i++ {
		score = u.Update(score, types.SentimentNegative)
		if score < MinScore {
			t.Fatalf("expected score floored at %d, got %d", MinScore, score)
		}
	}
	if score != MinScore {
		t.Fatalf("expected repeated negative updates to bottom out at %d, got %d", MinScore, score)
	}
}

func TestUpdateUnknownSentimentKeepsScore(t *testing.T) {
	u := newTestUpdater(6)
	if got := u.Update(42, types.Sentiment("mixed")); got != 42 {
		t.Fatalf("expected unknown sentiment to keep score 42, got %d", got)
	}
}

func TestClampBounds(t *testing.T) {
	if got := Clamp(-5); got != MinScore {
		t.Fatalf("expected %d, got %d", MinScore, got)
	}
	if got := Clamp(140); got != MaxScore {
		t.Fatalf("expected %d, got %d", MaxScore, got)
	}
	if got := Clamp(55); got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}
