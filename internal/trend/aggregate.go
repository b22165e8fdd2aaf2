package trend

import (
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// Aggregate merges snapshot history and the conversation log into one
// continuous daily series from the earliest to the latest known day. Days
// with no data at all become null-score placeholders so downstream charts
// never see gaps; days known only from the log get a neutral snapshot
// carrying defaultScore.
func Aggregate(history []types.MoodSnapshot, messages []types.MessageCount, defaultScore int) []types.MoodSnapshot {
	byDay := make(map[string]types.MoodSnapshot, len(history))
	var first, last time.Time
	observe := func(day time.Time) {
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	for _, snap := range history {
		day := types.DayOf(snap.Date)
		key := types.DayKey(day)
		// The most recently written snapshot wins a day.
		if prev, ok := byDay[key]; ok && prev.Timestamp.After(snap.Timestamp) {
			continue
		}
		snap.Date = day
		byDay[key] = snap
		observe(day)
	}

	counts := make(map[string]int, len(messages))
	for _, mc := range messages {
		day := types.DayOf(mc.Date)
		counts[types.DayKey(day)] += mc.Count
		observe(day)
	}

	if first.IsZero() {
		return nil
	}

	series := make([]types.MoodSnapshot, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := types.DayKey(day)
		snap, ok := byDay[key]
		count, counted := counts[key]
		switch {
		case ok:
			// Log entries add to whatever the snapshot already counted.
			if counted {
				snap.MessageCount += count
			}
			series = append(series, snap)
		case counted:
			score := defaultScore
			series = append(series, types.MoodSnapshot{
				Date:          day,
				MoodTag:       types.MoodTagNeutral,
				MoodName:      types.MoodNeutral,
				Sentiment:     types.SentimentNeutral,
				WellnessScore: &score,
				MessageCount:  count,
				Timestamp:     day,
			})
		default:
			series = append(series, types.MoodSnapshot{
				Date:      day,
				MoodTag:   types.MoodTagNeutral,
				MoodName:  types.MoodNeutral,
				Sentiment: types.SentimentNeutral,
				Timestamp: day,
			})
		}
	}
	return series
}
