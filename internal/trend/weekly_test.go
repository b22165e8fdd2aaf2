package trend

import (
	"reflect"
	"testing"
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// 2025-03-02 is a Sunday.
var sunday = time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

func flatWeek(start time.Time, score int, mood string, sentiment types.Sentiment) []types.MoodSnapshot {
	days := make([]types.MoodSnapshot, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, types.MoodSnapshot{
			Date:          start.AddDate(0, 0, i),
			MoodName:      mood,
			Sentiment:     sentiment,
			WellnessScore: scorePtr(score),
			MessageCount:  1,
			Timestamp:     start.AddDate(0, 0, i),
		})
	}
	return days
}

func TestWeeklyTrendsImprovement(t *testing.T) {
	daily := append(
		flatWeek(sunday, 60, types.MoodCalm, types.SentimentPositive),
		flatWeek(sunday.AddDate(0, 0, 7), 70, types.MoodHappy, types.SentimentPositive)...,
	)

	weekly := WeeklyTrends(daily)
	if len(weekly) != 2 {
		t.Fatalf("expected 2 weeks, got %d", len(weekly))
	}
	if weekly[0].Improvement != 0 {
		t.Fatalf("expected 0 improvement for the first week, got %v", weekly[0].Improvement)
	}
	if weekly[0].AverageWellness != 60 || weekly[1].AverageWellness != 70 {
		t.Fatalf("expected averages 60/70, got %d/%d", weekly[0].AverageWellness, weekly[1].AverageWellness)
	}
	if weekly[1].Improvement != 10 {
		t.Fatalf("expected +10 improvement, got %v", weekly[1].Improvement)
	}
	if !weekly[0].WeekStart.Equal(sunday) || !weekly[1].WeekStart.Equal(sunday.AddDate(0, 0, 7)) {
		t.Fatalf("unexpected week starts: %v / %v", weekly[0].WeekStart, weekly[1].WeekStart)
	}
}

func TestWeeklyTrendsPartialWeekBuckets(t *testing.T) {
	var daily []types.MoodSnapshot
	// Wednesday through the following Sunday.
	for i := 3; i <= 7; i++ {
		daily = append(daily, types.MoodSnapshot{
			Date:          sunday.AddDate(0, 0, i),
			MoodName:      types.MoodCalm,
			Sentiment:     types.SentimentPositive,
			WellnessScore: scorePtr(64),
		})
	}

	weekly := WeeklyTrends(daily)
	if len(weekly) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(weekly))
	}
	if !weekly[0].WeekStart.Equal(sunday) {
		t.Fatalf("expected first bucket anchored to %v, got %v", sunday, weekly[0].WeekStart)
	}
	if !weekly[1].WeekStart.Equal(sunday.AddDate(0, 0, 7)) {
		t.Fatalf("expected second bucket anchored to %v, got %v", sunday.AddDate(0, 0, 7), weekly[1].WeekStart)
	}
}

func TestWeeklyTrendsDominantMoodFirstEncounteredWinsTie(t *testing.T) {
	moods := []string{types.MoodSad, types.MoodHappy, types.MoodSad, types.MoodHappy, types.MoodCalm}
	var daily []types.MoodSnapshot
	for i, mood := range moods {
		daily = append(daily, types.MoodSnapshot{
			Date:          sunday.AddDate(0, 0, i),
			MoodName:      mood,
			WellnessScore: scorePtr(50),
		})
	}

	weekly := WeeklyTrends(daily)
	if len(weekly) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weekly))
	}
	if weekly[0].DominantMood != types.MoodSad {
		t.Fatalf("expected sad to win the tie, got %s", weekly[0].DominantMood)
	}
}

func TestWeeklyTrendsAllNullWeekAveragesZero(t *testing.T) {
	var daily []types.MoodSnapshot
	for i := 0; i < 3; i++ {
		daily = append(daily, types.MoodSnapshot{
			Date:      sunday.AddDate(0, 0, i),
			MoodName:  types.MoodNeutral,
			Sentiment: types.SentimentNeutral,
		})
	}

	weekly := WeeklyTrends(daily)
	if len(weekly) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weekly))
	}
	if weekly[0].AverageWellness != 0 {
		t.Fatalf("expected average 0 for an all-null week, got %d", weekly[0].AverageWellness)
	}
	if weekly[0].PositiveRatio != 0 {
		t.Fatalf("expected positive ratio 0, got %v", weekly[0].PositiveRatio)
	}
}

func TestWeeklyTrendsPositiveRatioAndMessages(t *testing.T) {
	var daily []types.MoodSnapshot
	for i := 0; i < 7; i++ {
		sentiment := types.SentimentPositive
		if i >= 5 {
			sentiment = types.SentimentNegative
		}
		daily = append(daily, types.MoodSnapshot{
			Date:          sunday.AddDate(0, 0, i),
			MoodName:      types.MoodHappy,
			Sentiment:     sentiment,
			WellnessScore: scorePtr(70),
			MessageCount:  i,
		})
	}

	weekly := WeeklyTrends(daily)
	if len(weekly) != 1 {
		t.Fatalf("expected 1 week, got %d", len(weekly))
	}
	if want := 5.0 / 7.0; weekly[0].PositiveRatio != want {
		t.Fatalf("expected positive ratio %v, got %v", want, weekly[0].PositiveRatio)
	}
	if weekly[0].TotalMessages != 21 {
		t.Fatalf("expected 21 messages, got %d", weekly[0].TotalMessages)
	}
}

func TestWeeklyTrendsRecomputeIsPure(t *testing.T) {
	daily := append(
		flatWeek(sunday, 58, types.MoodTired, types.SentimentNegative),
		flatWeek(sunday.AddDate(0, 0, 7), 66, types.MoodCalm, types.SentimentPositive)...,
	)

	first := WeeklyTrends(daily)
	second := WeeklyTrends(daily)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical trends on recompute, got %#v vs %#v", first, second)
	}
}
