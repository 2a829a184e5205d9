package suggest

import "strings"

// DefaultMinOccurrences is the repeat threshold for proposing a custom chip.
const DefaultMinOccurrences = 3

// CustomSuggestion is a proposed custom chip mined from free-text notes.
type CustomSuggestion struct {
	Text        string `json:"text"`
	Occurrences int    `json:"occurrences"`
}

// SuggestCustomChip scans free-text notes for repeated exact phrases.
// Notes are lower-cased and trimmed; strings of length <= 5 are
// discarded. Returns the most frequent phrase when it occurs at least
// minOccurrences times, else nil. Matching is deliberately literal:
// near-duplicate phrasings are not merged.
func SuggestCustomChip(notes []string, minOccurrences int) *CustomSuggestion {
	if minOccurrences <= 0 {
		minOccurrences = DefaultMinOccurrences
	}

	counts := map[string]int{}
	var best string
	bestCount := 0
	for _, n := range notes {
		n = strings.ToLower(strings.TrimSpace(n))
		if len(n) <= 5 {
			continue
		}
		counts[n]++
		if counts[n] > bestCount {
			best = n
			bestCount = counts[n]
		}
	}

	if bestCount < minOccurrences {
		return nil
	}
	return &CustomSuggestion{Text: best, Occurrences: bestCount}
}
