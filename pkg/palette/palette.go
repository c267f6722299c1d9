// Package palette resolves free-text queries from the command palette to
// catalog actions.
package palette

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"xint/pkg/actions"
)

// Tier weights. A query can hit several tiers; the weights add up.
const (
	ExactKey       = 100
	ExactLabel     = 90
	ExactAlias     = 80
	LabelPrefix    = 70
	AliasPrefix    = 60
	LabelSubstring = 40
	HintSubstring  = 20
)

// Score rates how well query names action. An empty query scores 0.
func Score(action actions.Action, query string) int {
	q := strings.ToLower(query)
	if q == "" {
		return 0
	}

	label := strings.ToLower(action.Label)
	score := 0
	if action.Key == q {
		score += ExactKey
	}
	if label == q {
		score += ExactLabel
	}
	if anyAlias(action.Aliases, func(alias string) bool { return alias == q }) {
		score += ExactAlias
	}
	if strings.HasPrefix(label, q) {
		score += LabelPrefix
	}
	if anyAlias(action.Aliases, func(alias string) bool { return strings.HasPrefix(alias, q) }) {
		score += AliasPrefix
	}
	if strings.Contains(label, q) {
		score += LabelSubstring
	}
	if strings.Contains(strings.ToLower(action.Hint), q) {
		score += HintSubstring
	}
	return score
}

// BestMatch returns the catalog index of the highest scoring action. Ties go
// to the earliest entry. It reports false for a blank query or when nothing
// scores above zero.
func BestMatch(catalog actions.Catalog, query string) (int, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0, false
	}

	best, bestScore := -1, 0
	for i, action := range catalog {
		if score := Score(action, trimmed); score > bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return best, true
}

func anyAlias(aliases []string, fn func(string) bool) bool {
	for _, alias := range aliases {
		if fn(strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

// Suggest finds the action whose label or alias is the closest fuzzy
// subsequence match for query. It never selects anything on its own; callers
// use it to hint at a likely action after BestMatch found none.
func Suggest(catalog actions.Catalog, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}

	var targets []string
	var owners []int
	for i, action := range catalog {
		targets = append(targets, strings.ToLower(action.Label))
		owners = append(owners, i)
		for _, alias := range action.Aliases {
			targets = append(targets, strings.ToLower(alias))
			owners = append(owners, i)
		}
	}

	matches := fuzzy.Find(q, targets)
	if len(matches) == 0 {
		return 0, false
	}
	return owners[matches[0].Index], true
}
