package mood

import "github.com/solacehq/solace-core/internal/types"

// Category is one recognizable mood and its detection vocabulary.
type Category struct {
	Name      string
	Tag       string
	Sentiment types.Sentiment
	// Weight scales every confidence produced for this category.
	Weight float64
	// Primary keywords name the mood outright, secondary ones are weaker
	// signals, expressions cover emoji and chat shorthand.
	Primary     []string
	Secondary   []string
	Expressions []string
	// Phrases are multi-word idioms matched against the whole message.
	Phrases []string
}

// catalog lists the categories in canonical scan order. Earlier entries win
// score ties, so the order is part of the contract.
var catalog = []Category{
	{
		Name:        types.MoodHappy,
		Tag:         "😊",
		Sentiment:   types.SentimentPositive,
		Weight:      1.0,
		Primary:     []string{"happy", "joyful", "delighted", "wonderful", "fantastic", "amazing"},
		Secondary:   []string{"good", "great", "nice", "glad", "pleased", "cheerful", "content"},
		Expressions: []string{"😊", "😁", "🙂", ":)", ":-)", "yay"},
		Phrases:     []string{"feeling good", "in a good mood", "made my day", "on top of the world"},
	},
	{
		Name:        types.MoodExcited,
		Tag:         "🤩",
		Sentiment:   types.SentimentPositive,
		Weight:      0.9,
		Primary:     []string{"excited", "thrilled", "ecstatic", "pumped", "stoked"},
		Secondary:   []string{"eager", "hyped", "energized", "buzzing"},
		Expressions: []string{"🤩", "🎉", "🔥"},
		Phrases:     []string{"can't wait", "looking forward to", "best day ever"},
	},
	{
		Name:        types.MoodSad,
		Tag:         "😢",
		Sentiment:   types.SentimentNegative,
		Weight:      1.0,
		Primary:     []string{"sad", "depressed", "miserable", "heartbroken", "devastated"},
		Secondary:   []string{"down", "unhappy", "upset", "lonely", "crying", "hopeless", "gloomy"},
		Expressions: []string{"😢", "😭", "💔", ":("},
		Phrases:     []string{"feeling down", "want to cry", "can't stop crying", "really low"},
	},
	{
		Name:        types.MoodAngry,
		Tag:         "😠",
		Sentiment:   types.SentimentNegative,
		Weight:      0.9,
		Primary:     []string{"angry", "furious", "mad", "hate", "enraged"},
		Secondary:   []string{"annoyed", "frustrated", "irritated", "pissed", "fed up"},
		Expressions: []string{"😠", "😡", "🤬"},
		Phrases:     []string{"sick of this", "drives me crazy", "fed up with"},
	},
	{
		Name:        types.MoodAnxious,
		Tag:         "😰",
		Sentiment:   types.SentimentNegative,
		Weight:      0.9,
		Primary:     []string{"anxious", "nervous", "worried", "panic", "scared", "afraid"},
		Secondary:   []string{"stress", "overwhelm", "uneasy", "restless", "dread", "tense"},
		Expressions: []string{"😰", "😟", "😬"},
		Phrases:     []string{"freaking out", "on edge", "can't stop worrying", "heart is racing"},
	},
	{
		Name:        types.MoodCalm,
		Tag:         "😌",
		Sentiment:   types.SentimentPositive,
		Weight:      0.8,
		Primary:     []string{"calm", "peaceful", "relaxed", "serene", "tranquil"},
		Secondary:   []string{"chill", "settled", "rested", "mellow", "comfortable"},
		Expressions: []string{"😌", "🧘", "☺️"},
		Phrases:     []string{"at peace", "feeling zen", "taking it easy", "no worries"},
	},
	{
		Name:        types.MoodTired,
		Tag:         "😴",
		Sentiment:   types.SentimentNegative,
		Weight:      0.7,
		Primary:     []string{"tired", "exhausted", "sleepy", "drained", "fatigue"},
		Secondary:   []string{"weary", "sluggish", "burnt out", "worn out"},
		Expressions: []string{"😴", "🥱", "💤"},
		Phrases:     []string{"no energy", "barely slept", "need sleep", "running on empty"},
	},
	{
		Name:        types.MoodConfused,
		Tag:         "😕",
		Sentiment:   types.SentimentNeutral,
		Weight:      0.7,
		Primary:     []string{"confused", "puzzled", "bewildered", "perplexed"},
		Secondary:   []string{"unsure", "uncertain", "lost", "torn", "foggy"},
		Expressions: []string{"😕", "🤔"},
		Phrases:     []string{"don't understand", "makes no sense", "mixed feelings", "all over the place"},
	},
}

// Categories returns the catalog in scan order. Callers must not mutate it.
func Categories() []Category {
	return catalog
}
