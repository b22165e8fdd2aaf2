package streak

import (
	"time"

	"github.com/solacehq/solace-core/internal/types"
)

// Current counts consecutive engagement days ending at today. A day without
// a login breaks the chain; no login today means no streak.
func Current(logins []time.Time, today time.Time) int {
	if len(logins) == 0 {
		return 0
	}
	days := make(map[string]struct{}, len(logins))
	for _, at := range logins {
		days[types.DayKey(at)] = struct{}{}
	}

	streak := 0
	for day := types.DayOf(today); ; day = day.AddDate(0, 0, -1) {
		if _, ok := days[types.DayKey(day)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// FromSeries derives the streak from the daily mood series for users with
// no login log. Degraded mode: only days carrying real data count, so
// synthesized message-only days still extend the chain while gap-filled
// days break it.
func FromSeries(daily []types.MoodSnapshot, today time.Time) int {
	var dates []time.Time
	for _, day := range daily {
		if day.WellnessScore != nil {
			dates = append(dates, day.Date)
		}
	}
	return Current(dates, today)
}
