package keyword

import "strings"

// Rule associates a label with the keywords that indicate it.
type Rule struct {
	Label    string
	Keywords []string
}

// Table is an ordered keyword rule set. Both the intent classifier's
// fallback and the knowledge agent's template selector consume this one
// structure so the two keyword lists cannot drift apart. Order matters:
// Best breaks exact ties in favor of no winner, FirstMatch takes the
// earliest rule with any hit.
type Table []Rule

// Scores returns the keyword-density score per label: the fraction of
// the label's keywords found as substrings of the lowercased text.
func (t Table) Scores(text string) map[string]float64 {
	lower := strings.ToLower(text)

	scores := make(map[string]float64, len(t))
	for _, rule := range t {
		if len(rule.Keywords) == 0 {
			scores[rule.Label] = 0
			continue
		}
		matches := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				matches++
			}
		}
		scores[rule.Label] = float64(matches) / float64(len(rule.Keywords))
	}
	return scores
}

// Best returns the label with the highest keyword-density score. ok is
// false when every score is zero or the top score is shared by more
// than one label.
func (t Table) Best(text string) (string, float64, bool) {
	scores := t.Scores(text)

	bestLabel := ""
	bestScore := 0.0
	tied := false
	for _, rule := range t {
		score := scores[rule.Label]
		if score > bestScore {
			bestLabel = rule.Label
			bestScore = score
			tied = false
		} else if score == bestScore && bestScore > 0 {
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return "", 0, false
	}
	return bestLabel, bestScore, true
}

// FirstMatch returns the label of the first rule with any keyword found
// in the text.
func (t Table) FirstMatch(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range t {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Label, true
			}
		}
	}
	return "", false
}
