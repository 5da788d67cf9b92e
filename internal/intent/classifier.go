package intent

import "strings"

// Classifier maps free text to an Intent.
// The rule-based implementation below uses substring heuristics; the
// interface exists so a semantic matcher can replace it without touching
// callers.
type Classifier interface {
	Classify(text string) Intent
}

// RuleClassifier classifies by walking an ordered rule table, then an
// ordered technology keyword table. Both tables are built once and never
// mutated, so the classifier is safe for concurrent use.
type RuleClassifier struct {
	rules []Rule
	techs []Technology
}

// NewRuleClassifier creates a classifier over the given tables.
func NewRuleClassifier(rules []Rule, techs []Technology) *RuleClassifier {
	return &RuleClassifier{rules: rules, techs: techs}
}

// NewDefaultClassifier creates a classifier over the default tables.
func NewDefaultClassifier() *RuleClassifier {
	return NewRuleClassifier(DefaultRules(), DefaultTechnologies())
}

// Classify returns the first matching intent. It never fails: text that
// matches nothing classifies as Unknown with confidence 0.1.
func (c *RuleClassifier) Classify(text string) Intent {
	norm := strings.ToLower(strings.TrimSpace(text))

	for _, rule := range c.rules {
		for _, pattern := range rule.Patterns {
			if containsPattern(norm, pattern) {
				return Intent{
					Name:           rule.Name,
					Confidence:     patternConfidence(pattern, norm),
					MatchedPattern: pattern,
				}
			}
		}
	}

	for _, tech := range c.techs {
		for _, kw := range tech.Keywords {
			if containsPattern(norm, kw) {
				return Intent{
					Name:           CourseRecommendation,
					Confidence:     0.9,
					MatchedPattern: kw,
					Technology:     tech.Name,
				}
			}
		}
	}

	return Intent{Name: Unknown, Confidence: 0.1}
}

// containsPattern reports whether pattern occurs in text on word
// boundaries. Plain substring search would let short tokens fire inside
// unrelated words ("hi" in "something", "hey" in "they"); anchoring both
// ends keeps greeting tokens from hijacking ordinary messages.
func containsPattern(text, pattern string) bool {
	for start := 0; ; {
		i := strings.Index(text[start:], pattern)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(pattern)
		if (i == 0 || isBoundary(text[i-1])) && (end == len(text) || isBoundary(text[end])) {
			return true
		}
		start = i + 1
	}
}

func isBoundary(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return false
	case b >= '0' && b <= '9':
		return false
	}
	return true
}

// patternConfidence is the declared heuristic: the fraction of pattern
// words also present in the text. Not semantic similarity.
func patternConfidence(pattern, text string) float64 {
	words := strings.Fields(pattern)
	if len(words) == 0 {
		return 0
	}
	found := 0
	for _, w := range words {
		if containsPattern(text, w) {
			found++
		}
	}
	conf := float64(found) / float64(len(words))
	if conf < 0 {
		return 0
	}
	if conf > 1 {
		return 1
	}
	return conf
}
