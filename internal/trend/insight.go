package trend

import (
	"fmt"

	"github.com/solacehq/solace-core/internal/types"
)

// maxInsights caps what the dashboard shows at once.
const maxInsights = 4

// Insight rule thresholds.
const (
	improvementCutoff   = 5.0
	positiveRatioCutoff = 0.7
	presentDaysCutoff   = 5
	engagementCutoff    = 3.0
	strongScoreCutoff   = 80
	buildingScoreCutoff = 60
)

// Insights derives dashboard observations from the daily series and its
// weekly trends. Rules run in a fixed priority order and the result is
// capped at maxInsights.
func Insights(daily []types.MoodSnapshot, weekly []types.WeeklyTrend) []types.Insight {
	if len(daily) == 0 {
		return []types.Insight{{
			Kind:        types.InsightPattern,
			Title:       "Start your journey",
			Description: "Chat a little every day and your mood trends will show up here.",
			Hint:        "Say how you feel in your own words.",
		}}
	}

	var insights []types.Insight
	add := func(in types.Insight) {
		if len(insights) < maxInsights {
			insights = append(insights, in)
		}
	}

	if len(weekly) > 0 {
		latest := weekly[len(weekly)-1]
		if latest.Improvement > improvementCutoff {
			add(types.Insight{
				Kind:        types.InsightImprovement,
				Title:       "Trending up",
				Description: fmt.Sprintf("Your average wellness climbed %.0f points over last week.", latest.Improvement),
			})
		}
		if latest.Improvement < -improvementCutoff {
			add(types.Insight{
				Kind:        types.InsightConcern,
				Title:       "Rough patch",
				Description: fmt.Sprintf("Your average wellness dropped %.0f points from last week.", -latest.Improvement),
				Hint:        "A short walk or a breathing exercise can help today.",
			})
		}
		if latest.PositiveRatio > positiveRatioCutoff {
			add(types.Insight{
				Kind:        types.InsightAchievement,
				Title:       "Bright week",
				Description: fmt.Sprintf("%.0f%% of your days this week leaned positive.", latest.PositiveRatio*100),
			})
		}
	}

	if present := presentDays(daily, 7); present >= presentDaysCutoff {
		add(types.Insight{
			Kind:        types.InsightAchievement,
			Title:       "Showing up",
			Description: fmt.Sprintf("You checked in on %d of the last 7 days.", present),
		})
	}

	switch dominantMood(daily) {
	case types.MoodHappy, types.MoodExcited:
		add(types.Insight{
			Kind:        types.InsightPattern,
			Title:       "Sunny stretch",
			Description: fmt.Sprintf("Your most frequent mood lately is %s.", dominantMood(daily)),
		})
	case types.MoodCalm:
		add(types.Insight{
			Kind:        types.InsightPattern,
			Title:       "Steady and calm",
			Description: "Calm has been your most frequent mood lately.",
		})
	}

	if avg := averageMessages(daily); avg >= engagementCutoff {
		add(types.Insight{
			Kind:        types.InsightAchievement,
			Title:       "Great engagement",
			Description: fmt.Sprintf("You average %.0f messages a day.", avg),
		})
	}

	if score, ok := latestScore(daily); ok {
		switch {
		case score >= strongScoreCutoff:
			add(types.Insight{
				Kind:        types.InsightAchievement,
				Title:       "Strong wellness",
				Description: fmt.Sprintf("Your wellness score sits at %d.", score),
			})
		case score >= buildingScoreCutoff:
			add(types.Insight{
				Kind:        types.InsightImprovement,
				Title:       "Momentum building",
				Description: fmt.Sprintf("Your wellness score is %d and has room to grow.", score),
				Hint:        "Pick one small daily goal tonight.",
			})
		}
	}

	return insights
}

// presentDays counts how many of the last n series points carry real data.
func presentDays(daily []types.MoodSnapshot, n int) int {
	start := len(daily) - n
	if start < 0 {
		start = 0
	}
	present := 0
	for _, day := range daily[start:] {
		if day.WellnessScore != nil {
			present++
		}
	}
	return present
}

func dominantMood(daily []types.MoodSnapshot) string {
	counts := make(map[string]int)
	var order []string
	for _, day := range daily {
		if _, seen := counts[day.MoodName]; !seen {
			order = append(order, day.MoodName)
		}
		counts[day.MoodName]++
	}
	dominant := ""
	best := 0
	for _, name := range order {
		if counts[name] > best {
			dominant = name
			best = counts[name]
		}
	}
	return dominant
}

func averageMessages(daily []types.MoodSnapshot) float64 {
	total := 0
	for _, day := range daily {
		total += day.MessageCount
	}
	return float64(total) / float64(len(daily))
}

// latestScore walks back to the newest day that carries a real score.
func latestScore(daily []types.MoodSnapshot) (int, bool) {
	for i := len(daily) - 1; i >= 0; i-- {
		if daily[i].WellnessScore != nil {
			return *daily[i].WellnessScore, true
		}
	}
	return 0, false
}
