package mood

import (
	"math"
	"regexp"
	"strings"

	"github.com/solacehq/solace-core/internal/types"
)

// DefaultThreshold gates persistence of a classification result.
const DefaultThreshold = 0.15

// Tier confidences and scan weights of the detection cascade.
const (
	directPrimaryConfidence    = 0.95
	directSecondaryConfidence  = 0.85
	directExpressionConfidence = 0.80
	phraseConfidence           = 0.75

	scanPrimaryWeight    = 0.8
	scanSecondaryWeight  = 0.6
	scanExpressionWeight = 0.7
	scanWinThreshold     = 0.2
	scanConfidenceBoost  = 0.2
	scanConfidenceCap    = 0.85

	hintMoodConfidence    = 0.45
	hintNeutralConfidence = 0.30
)

// Direct mood statements. Matched against the lowercased text; the captured
// remainder is tested against the category vocabularies. Specific forms come
// before the bare "i'm" catch-all.
var directStatementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`i(?:'m| am)\s+feeling\s+(?:really\s+|so\s+|very\s+|pretty\s+|a bit\s+)?(.+)`),
	regexp.MustCompile(`i\s+feel\s+(?:really\s+|so\s+|very\s+|pretty\s+|a bit\s+)?(.+)`),
	regexp.MustCompile(`i(?:'m| am)\s+so\s+(.+)`),
	regexp.MustCompile(`lately\s+i(?:'ve| have)\s+been\s+(.+)`),
	regexp.MustCompile(`i(?:'ve| have)\s+been\s+(?:feeling\s+)?(?:really\s+|so\s+)?(.+)`),
	regexp.MustCompile(`feeling\s+(?:really\s+|so\s+|very\s+|pretty\s+)?(.+)`),
	regexp.MustCompile(`i(?:'m| am)\s+(?:really\s+|very\s+|pretty\s+)?(.+)`),
}

// Classifier maps free-form message text onto the mood catalog.
type Classifier struct {
	categories []Category
	patterns   []*regexp.Regexp
	threshold  float64
}

// NewClassifier returns a Classifier over the built-in catalog. A threshold
// of 0 or less selects DefaultThreshold.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		categories: catalog,
		patterns:   directStatementPatterns,
		threshold:  threshold,
	}
}

// Classify runs the detection cascade over one message. It never fails; a
// message with no signal comes back as the neutral fallback.
func (c *Classifier) Classify(text string, hint types.Sentiment) types.ClassificationResult {
	lowered := normalize(text)
	if lowered == "" {
		return neutralResult()
	}

	if res, ok := c.matchDirectStatement(lowered); ok {
		return res
	}
	if res, ok := c.matchPhrase(lowered); ok {
		return res
	}
	if res, ok := c.scanKeywords(lowered); ok {
		return res
	}
	if res, ok := hintFallback(hint); ok {
		return res
	}
	return neutralResult()
}

// ShouldUpdate reports whether a result is confident enough to move the
// stored mood state.
func (c *Classifier) ShouldUpdate(res types.ClassificationResult) bool {
	return res.Confidence > c.threshold
}

func normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	return strings.ReplaceAll(lowered, "’", "'")
}

func (c *Classifier) matchDirectStatement(lowered string) (types.ClassificationResult, bool) {
	for _, pattern := range c.patterns {
		m := pattern.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		remainder := m[1]
		for _, cat := range c.categories {
			keyword, base := matchTier(remainder, cat)
			if keyword == "" {
				continue
			}
			return types.ClassificationResult{
				MoodName:        cat.Name,
				MoodTag:         cat.Tag,
				Sentiment:       cat.Sentiment,
				Confidence:      base * cat.Weight,
				MatchedKeywords: []string{keyword},
				Method:          types.MethodDirectStatement,
			}, true
		}
	}
	return types.ClassificationResult{}, false
}

func (c *Classifier) matchPhrase(lowered string) (types.ClassificationResult, bool) {
	for _, cat := range c.categories {
		phrase := firstContained(lowered, cat.Phrases)
		if phrase == "" {
			continue
		}
		return types.ClassificationResult{
			MoodName:        cat.Name,
			MoodTag:         cat.Tag,
			Sentiment:       cat.Sentiment,
			Confidence:      phraseConfidence * cat.Weight,
			MatchedKeywords: []string{phrase},
			Method:          types.MethodPhraseMatch,
		}, true
	}
	return types.ClassificationResult{}, false
}

func (c *Classifier) scanKeywords(lowered string) (types.ClassificationResult, bool) {
	best := -1
	bestScore := 0.0
	var bestMatched []string
	for i, cat := range c.categories {
		score := 0.0
		var matched []string
		for _, keyword := range cat.Primary {
			if strings.Contains(lowered, keyword) {
				score += scanPrimaryWeight * cat.Weight
				matched = append(matched, keyword)
			}
		}
		for _, keyword := range cat.Secondary {
			if strings.Contains(lowered, keyword) {
				score += scanSecondaryWeight * cat.Weight
				matched = append(matched, keyword)
			}
		}
		for _, keyword := range cat.Expressions {
			if strings.Contains(lowered, keyword) {
				score += scanExpressionWeight * cat.Weight
				matched = append(matched, keyword)
			}
		}
		// Strictly greater keeps earlier categories on ties.
		if score > bestScore {
			best = i
			bestScore = score
			bestMatched = matched
		}
	}
	if best < 0 || bestScore <= scanWinThreshold {
		return types.ClassificationResult{}, false
	}
	cat := c.categories[best]
	return types.ClassificationResult{
		MoodName:        cat.Name,
		MoodTag:         cat.Tag,
		Sentiment:       cat.Sentiment,
		Confidence:      math.Min(bestScore+scanConfidenceBoost, scanConfidenceCap),
		MatchedKeywords: bestMatched,
		Method:          types.MethodKeywordScan,
	}, true
}

func hintFallback(hint types.Sentiment) (types.ClassificationResult, bool) {
	name := ""
	confidence := hintMoodConfidence
	switch hint {
	case types.SentimentPositive:
		name = types.MoodHappy
	case types.SentimentNegative:
		name = types.MoodSad
	case types.SentimentNeutral:
		name = types.MoodCalm
		confidence = hintNeutralConfidence
	default:
		return types.ClassificationResult{}, false
	}
	cat := categoryByName(name)
	return types.ClassificationResult{
		MoodName:   cat.Name,
		MoodTag:    cat.Tag,
		Sentiment:  hint,
		Confidence: confidence,
		Method:     types.MethodSentimentHint,
	}, true
}

// matchTier returns the first keyword of cat found in the remainder and the
// base confidence of its tier.
func matchTier(remainder string, cat Category) (string, float64) {
	if keyword := firstContained(remainder, cat.Primary); keyword != "" {
		return keyword, directPrimaryConfidence
	}
	if keyword := firstContained(remainder, cat.Secondary); keyword != "" {
		return keyword, directSecondaryConfidence
	}
	if keyword := firstContained(remainder, cat.Expressions); keyword != "" {
		return keyword, directExpressionConfidence
	}
	return "", 0
}

func firstContained(text string, keywords []string) string {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}

func categoryByName(name string) Category {
	for _, cat := range catalog {
		if cat.Name == name {
			return cat
		}
	}
	return Category{Name: name, Tag: types.MoodTagNeutral, Sentiment: types.SentimentNeutral}
}

func neutralResult() types.ClassificationResult {
	return types.ClassificationResult{
		MoodName:  types.MoodNeutral,
		MoodTag:   types.MoodTagNeutral,
		Sentiment: types.SentimentNeutral,
		Method:    types.MethodNeutralFallback,
	}
}
