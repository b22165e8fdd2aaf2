package trend

import (
	"testing"

	"github.com/solacehq/solace-core/internal/types"
)

func TestInsightsEmptySeriesReturnsOnboarding(t *testing.T) {
	insights := Insights(nil, nil)
	if len(insights) != 1 {
		t.Fatalf("expected a single onboarding insight, got %d", len(insights))
	}
	if insights[0].Kind != types.InsightPattern {
		t.Fatalf("expected pattern kind, got %s", insights[0].Kind)
	}
}

func TestInsightsImprovementRule(t *testing.T) {
	daily := []types.MoodSnapshot{{Date: sunday, MoodName: types.MoodSad, WellnessScore: scorePtr(50)}}
	weekly := []types.WeeklyTrend{{Improvement: 8}}

	insights := Insights(daily, weekly)
	if len(insights) == 0 || insights[0].Kind != types.InsightImprovement {
		t.Fatalf("expected an improvement insight first, got %#v", insights)
	}
}

func TestInsightsConcernRuleCarriesHint(t *testing.T) {
	daily := []types.MoodSnapshot{{Date: sunday, MoodName: types.MoodSad, WellnessScore: scorePtr(50)}}
	weekly := []types.WeeklyTrend{{Improvement: -8}}

	insights := Insights(daily, weekly)
	if len(insights) == 0 || insights[0].Kind != types.InsightConcern {
		t.Fatalf("expected a concern insight first, got %#v", insights)
	}
	if insights[0].Hint == "" {
		t.Fatalf("expected the concern insight to carry an actionable hint")
	}
}

func TestInsightsBuildingScoreCarriesHint(t *testing.T) {
	daily := []types.MoodSnapshot{{Date: sunday, MoodName: types.MoodSad, WellnessScore: scorePtr(65)}}

	insights := Insights(daily, []types.WeeklyTrend{{}})
	if len(insights) != 1 {
		t.Fatalf("expected only the momentum insight, got %#v", insights)
	}
	if insights[0].Kind != types.InsightImprovement || insights[0].Hint == "" {
		t.Fatalf("expected an improvement insight with a hint, got %#v", insights[0])
	}
}

func TestInsightsStrongScore(t *testing.T) {
	daily := []types.MoodSnapshot{{Date: sunday, MoodName: types.MoodSad, WellnessScore: scorePtr(85)}}

	insights := Insights(daily, []types.WeeklyTrend{{}})
	if len(insights) != 1 {
		t.Fatalf("expected only the strong wellness insight, got %#v", insights)
	}
	if insights[0].Kind != types.InsightAchievement {
		t.Fatalf("expected an achievement, got %s", insights[0].Kind)
	}
}

func TestInsightsCapAtFour(t *testing.T) {
	daily := flatWeek(sunday, 85, types.MoodHappy, types.SentimentPositive)
	for i := range daily {
		daily[i].MessageCount = 5
	}
	weekly := []types.WeeklyTrend{{Improvement: 10, PositiveRatio: 1.0}}

	insights := Insights(daily, weekly)
	if len(insights) != maxInsights {
		t.Fatalf("expected the cap of %d insights, got %d", maxInsights, len(insights))
	}
	wantKinds := []types.InsightKind{
		types.InsightImprovement,
		types.InsightAchievement,
		types.InsightAchievement,
		types.InsightPattern,
	}
	for i, kind := range wantKinds {
		if insights[i].Kind != kind {
			t.Fatalf("expected %s at position %d, got %s", kind, i, insights[i].Kind)
		}
	}
}
