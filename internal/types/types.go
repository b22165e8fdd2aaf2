package types

import "time"

// Sentiment is the coarse polarity attached to a mood category or an
// external hint.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Canonical mood names, in classifier iteration order.
const (
	MoodHappy    = "happy"
	MoodExcited  = "excited"
	MoodSad      = "sad"
	MoodAngry    = "angry"
	MoodAnxious  = "anxious"
	MoodCalm     = "calm"
	MoodTired    = "tired"
	MoodConfused = "confused"

	// MoodNeutral is the fallback when no category matches. It is not a
	// catalog category.
	MoodNeutral = "neutral"
)

// MoodTagNeutral marks neutral fallbacks, synthesized placeholders and
// freshly reset days.
const MoodTagNeutral = "😐"

// Classification methods, recorded on every result for the dashboard's
// "how was this detected" breakdown.
const (
	MethodDirectStatement = "direct_statement"
	MethodPhraseMatch     = "phrase_match"
	MethodKeywordScan     = "keyword_scan"
	MethodSentimentHint   = "sentiment_hint"
	MethodNeutralFallback = "neutral_fallback"
)

// ClassificationResult is the outcome of classifying one inbound message.
type ClassificationResult struct {
	MoodName  string    `json:"mood_name"`
	MoodTag   string    `json:"mood_tag"`
	Sentiment Sentiment `json:"sentiment"`
	// Confidence is 0 for the neutral fallback and at most 0.95.
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Method          string   `json:"method"`
}

// MoodSnapshot is one day of a user's mood state. Date is the UTC civil
// day; Timestamp is when the snapshot was last written.
type MoodSnapshot struct {
	Date      time.Time `json:"date"`
	MoodTag   string    `json:"mood_tag"`
	MoodName  string    `json:"mood_name"`
	Sentiment Sentiment `json:"sentiment"`
	// WellnessScore is nil on gap-filled days that carry no real data.
	WellnessScore *int      `json:"wellness_score"`
	MessageCount  int       `json:"message_count"`
	Timestamp     time.Time `json:"timestamp"`
}

// MessageCount is one day of message volume from the conversation log.
type MessageCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// WeeklyTrend summarizes one calendar week of the daily series.
type WeeklyTrend struct {
	WeekStart       time.Time `json:"week_start"`
	AverageWellness int       `json:"average_wellness"`
	DominantMood    string    `json:"dominant_mood"`
	TotalMessages   int       `json:"total_messages"`
	PositiveRatio   float64   `json:"positive_ratio"`
	// Improvement is this week's average wellness minus last week's,
	// 0 for the first week on record.
	Improvement float64 `json:"improvement"`
}

// InsightKind tags an insight for dashboard styling.
type InsightKind string

const (
	InsightImprovement InsightKind = "improvement"
	InsightConcern     InsightKind = "concern"
	InsightAchievement InsightKind = "achievement"
	InsightPattern     InsightKind = "pattern"
)

// Insight is a human-readable observation derived from the trend data.
type Insight struct {
	Kind        InsightKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Hint        string      `json:"hint,omitempty"`
}

// GoalCategory groups daily goals by their origin.
type GoalCategory string

const (
	GoalBase      GoalCategory = "base"
	GoalAI        GoalCategory = "ai"
	GoalGeneral   GoalCategory = "general"
	GoalCustom    GoalCategory = "custom"
	GoalAddiction GoalCategory = "addiction"
)

// GoalSlugMoodCheckIn is the base goal that completes automatically when a
// real mood lands for the day.
const GoalSlugMoodCheckIn = "mood-check-in"

// Goal is a daily goal shown on the dashboard. Slug is stable across
// regenerations; ID is minted per day.
type Goal struct {
	ID        string       `json:"id"`
	Slug      string       `json:"slug"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Points    int          `json:"points"`
	Category  GoalCategory `json:"category"`
	CreatedAt time.Time    `json:"created_at"`
}
