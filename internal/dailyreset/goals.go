package dailyreset

import (
	"time"

	"github.com/google/uuid"

	"github.com/solacehq/solace-core/internal/types"
)

// goalTemplate is one entry of the static daily goal catalog.
type goalTemplate struct {
	slug     string
	text     string
	points   int
	category types.GoalCategory
}

// The daily goal catalog. Base goals anchor the dashboard; general and
// addiction goals are regenerated with them each day. AI and custom goals
// come from elsewhere and are not minted here.
var dailyGoalCatalog = []goalTemplate{
	{slug: types.GoalSlugMoodCheckIn, text: "Check in with your mood", points: 10, category: types.GoalBase},
	{slug: "gratitude-note", text: "Write down one thing you are grateful for", points: 10, category: types.GoalBase},
	{slug: "hydrate", text: "Drink a glass of water", points: 5, category: types.GoalGeneral},
	{slug: "short-walk", text: "Take a ten minute walk", points: 10, category: types.GoalGeneral},
	{slug: "wind-down", text: "Put screens away an hour before bed", points: 15, category: types.GoalGeneral},
	{slug: "urge-check", text: "Note one urge you rode out today", points: 20, category: types.GoalAddiction},
}

// FreshGoals mints the day's default goals from the catalog.
func FreshGoals(now time.Time) []types.Goal {
	goals := make([]types.Goal, 0, len(dailyGoalCatalog))
	for _, tpl := range dailyGoalCatalog {
		goals = append(goals, types.Goal{
			ID:        uuid.NewString(),
			Slug:      tpl.slug,
			Text:      tpl.text,
			Points:    tpl.points,
			Category:  tpl.category,
			CreatedAt: now,
		})
	}
	return goals
}
