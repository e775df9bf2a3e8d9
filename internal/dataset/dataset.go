// Package dataset is the bundled nutrition reference used as the last
// resort when no external provider yields a result. Lookups never fail:
// exact match first, then fuzzy match, then a generic estimate. Every
// returned record is tagged with the mock source.
package dataset

import (
	"regexp"
	"strings"

	"github.com/snackscan/backend/internal/domain"
)

var (
	punctuationRegex = regexp.MustCompile(`[^\w\s]`)
	multiSpaceRegex  = regexp.MustCompile(`\s+`)
)

// Generic estimate values: conservative medians for a vending snack
// serving, used when a name matches nothing in the dataset.
const (
	genericCalories = 150
	genericProtein  = 2
	genericCarbs    = 20
	genericFat      = 6
	genericFiber    = 1
	genericSugar    = 12
	genericSodium   = 100
)

// Dataset is the read-only bundled nutrition reference.
type Dataset struct {
	byKey map[string]domain.NutritionFacts
	keys  []string // insertion order, for deterministic fuzzy scans
}

// New builds the dataset from the built-in entries.
func New() *Dataset {
	d := &Dataset{byKey: make(map[string]domain.NutritionFacts, len(entries))}
	for _, e := range entries {
		key := normalize(e.Name)
		if _, dup := d.byKey[key]; dup {
			continue
		}
		d.byKey[key] = e
		d.keys = append(d.keys, key)
	}
	return d
}

// Lookup resolves a product name against the dataset. The second return
// value reports whether a real dataset entry matched; when false the facts
// are the generic estimate. The returned record is always a fresh copy
// tagged with the mock source, health score unset.
func (d *Dataset) Lookup(name string) (*domain.NutritionFacts, bool) {
	key := normalize(name)

	if facts, ok := d.byKey[key]; ok {
		return tagged(facts), true
	}

	if matchKey, ok := d.fuzzyMatch(key); ok {
		return tagged(d.byKey[matchKey]), true
	}

	generic := domain.NutritionFacts{
		Name:        strings.TrimSpace(name),
		ServingSize: "1 serving",
		Calories:    genericCalories,
		Protein:     genericProtein,
		Carbs:       genericCarbs,
		Fat:         genericFat,
		Fiber:       genericFiber,
		Sugar:       genericSugar,
		Sodium:      genericSodium,
	}
	return tagged(generic), false
}

// Len returns the number of entries in the dataset.
func (d *Dataset) Len() int {
	return len(d.byKey)
}

func tagged(facts domain.NutritionFacts) *domain.NutritionFacts {
	facts.Source = domain.SourceMock
	return &facts
}

// fuzzyMatch scans entries for the best inexact match of a normalized
// query. Substring containment in either direction qualifies immediately;
// otherwise the entry with the highest token-overlap ratio wins, provided
// at least half the query tokens are covered.
func (d *Dataset) fuzzyMatch(query string) (string, bool) {
	if query == "" {
		return "", false
	}

	queryTokens := tokenize(query)

	bestKey := ""
	bestScore := 0.0
	for _, key := range d.keys {
		if strings.Contains(key, query) || strings.Contains(query, key) {
			return key, true
		}
		if len(queryTokens) == 0 {
			continue
		}

		entryTokens := tokenize(key)
		matched := 0
		for _, qt := range queryTokens {
			for _, et := range entryTokens {
				if qt == et || fuzzyTokenMatch(qt, et, 1) {
					matched++
					break
				}
			}
		}
		score := float64(matched) / float64(len(queryTokens))
		if score > bestScore {
			bestScore = score
			bestKey = key
		}
	}

	if bestScore >= 0.5 {
		return bestKey, true
	}
	return "", false
}

// normalize lowercases a name and collapses punctuation and whitespace so
// "Reese's  Peanut-Butter Cups" and "reeses peanut butter cups" share a key.
func normalize(s string) string {
	out := strings.ToLower(s)
	out = punctuationRegex.ReplaceAllString(out, " ")
	out = multiSpaceRegex.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// tokenize splits a normalized string into words, dropping single chars
// and pure numbers.
func tokenize(s string) []string {
	var tokens []string
	for _, w := range strings.Fields(s) {
		if len(w) <= 1 || isNumeric(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// fuzzyTokenMatch checks if two tokens are within the edit distance
// threshold. Short tokens are excluded to avoid false positives.
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if token1 == token2 {
		return true
	}
	if len(token1) < 4 || len(token2) < 4 {
		return false
	}

	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	n := len(r2)

	// Two rows instead of the full matrix.
	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
