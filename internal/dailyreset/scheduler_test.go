package dailyreset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

type fakeResetStore struct {
	lastReset map[string]string
	applies   int
	defaults  Defaults
	err       error
}

func (f *fakeResetStore) ApplyReset(ctx context.Context, userID string, day time.Time, defaults Defaults) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.lastReset == nil {
		f.lastReset = make(map[string]string)
	}
	key := types.DayKey(day)
	if f.lastReset[userID] == key {
		return false, nil
	}
	f.lastReset[userID] = key
	f.applies++
	f.defaults = defaults
	return true, nil
}

var monday = time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)

func TestCheckAppliesOncePerDay(t *testing.T) {
	store := &fakeResetStore{}
	s := NewScheduler(store, 60)

	applied, err := s.Check(context.Background(), "u1", monday)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !applied {
		t.Fatalf("expected the first check of the day to reset")
	}

	applied, err = s.Check(context.Background(), "u1", monday.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if applied {
		t.Fatalf("expected the second check of the day to be a no-op")
	}
	if store.applies != 1 {
		t.Fatalf("expected exactly one reset, got %d", store.applies)
	}
}

func TestCheckNewDayResetsAgain(t *testing.T) {
	store := &fakeResetStore{}
	s := NewScheduler(store, 60)

	if _, err := s.Check(context.Background(), "u1", monday); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	applied, err := s.Check(context.Background(), "u1", monday.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !applied || store.applies != 2 {
		t.Fatalf("expected a reset on the next day, got applied=%v applies=%d", applied, store.applies)
	}
}

func TestCheckBuildsNeutralDefaults(t *testing.T) {
	store := &fakeResetStore{}
	s := NewScheduler(store, 60)

	if _, err := s.Check(context.Background(), "u1", monday); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snap := store.defaults.Snapshot
	if snap.MoodName != types.MoodNeutral || snap.MoodTag != types.MoodTagNeutral {
		t.Fatalf("expected a neutral default snapshot, got %#v", snap)
	}
	if snap.WellnessScore == nil || *snap.WellnessScore != 60 {
		t.Fatalf("expected default score 60, got %#v", snap.WellnessScore)
	}
	if snap.MessageCount != 0 {
		t.Fatalf("expected zero messages on a fresh day, got %d", snap.MessageCount)
	}
	if !snap.Date.Equal(types.DayOf(monday)) {
		t.Fatalf("expected snapshot dated %v, got %v", types.DayOf(monday), snap.Date)
	}

	if len(store.defaults.Goals) == 0 {
		t.Fatalf("expected fresh goals")
	}
	slugs := make(map[string]bool)
	for _, goal := range store.defaults.Goals {
		if goal.Completed {
			t.Fatalf("expected fresh goals to start incomplete, got %#v", goal)
		}
		if goal.ID == "" {
			t.Fatalf("expected minted goal IDs")
		}
		slugs[goal.Slug] = true
	}
	if !slugs[types.GoalSlugMoodCheckIn] {
		t.Fatalf("expected the mood check-in goal in the fresh slate")
	}
}

func TestCheckFailureRetriesOnNextCheck(t *testing.T) {
	store := &fakeResetStore{err: errors.New("db down")}
	s := NewScheduler(store, 60)

	if _, err := s.Check(context.Background(), "u1", monday); err == nil {
		t.Fatalf("expected the failed reset to surface an error")
	}

	store.err = nil
	applied, err := s.Check(context.Background(), "u1", monday.Add(time.Hour))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !applied {
		t.Fatalf("expected the retry to perform the reset")
	}
}
