package trend

import (
	"math"
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// WeeklyTrends buckets a continuous daily series into calendar weeks
// starting on Sunday. The input must be in ascending day order, the way
// Aggregate produces it. The function is pure; recomputing over the same
// series yields the same trends.
func WeeklyTrends(daily []types.MoodSnapshot) []types.WeeklyTrend {
	if len(daily) == 0 {
		return nil
	}

	type bucket struct {
		start time.Time
		days  []types.MoodSnapshot
	}
	var buckets []bucket
	for _, day := range daily {
		start := types.WeekStart(day.Date)
		if len(buckets) == 0 || !buckets[len(buckets)-1].start.Equal(start) {
			buckets = append(buckets, bucket{start: start})
		}
		b := &buckets[len(buckets)-1]
		b.days = append(b.days, day)
	}

	trends := make([]types.WeeklyTrend, 0, len(buckets))
	prevAvg := 0
	for i, b := range buckets {
		sum, scored := 0, 0
		positives, messages := 0, 0
		moodCounts := make(map[string]int)
		var moodOrder []string
		for _, day := range b.days {
			if day.WellnessScore != nil {
				sum += *day.WellnessScore
				scored++
			}
			if _, seen := moodCounts[day.MoodName]; !seen {
				moodOrder = append(moodOrder, day.MoodName)
			}
			moodCounts[day.MoodName]++
			if day.Sentiment == types.SentimentPositive {
				positives++
			}
			messages += day.MessageCount
		}

		avg := 0
		if scored > 0 {
			avg = int(math.Round(float64(sum) / float64(scored)))
		}

		// Mode with first-encountered tie break.
		dominant := ""
		best := 0
		for _, name := range moodOrder {
			if moodCounts[name] > best {
				dominant = name
				best = moodCounts[name]
			}
		}

		improvement := 0.0
		if i > 0 {
			improvement = float64(avg - prevAvg)
		}

		trends = append(trends, types.WeeklyTrend{
			WeekStart:       b.start,
			AverageWellness: avg,
			DominantMood:    dominant,
			TotalMessages:   messages,
			PositiveRatio:   float64(positives) / float64(len(b.days)),
			Improvement:     improvement,
		})
		prevAvg = avg
	}
	return trends
}
