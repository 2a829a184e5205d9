package suggest

import (
	"strings"
	"unicode"

	"github.com/kinlog/kinlog/internal/model"
)

// Leading verbs and prepositions stripped from templates when merging
// several topic/action tags into one "talked about" list.
var leadingVerbs = []string{
	"talked about ",
	"chatted about ",
	"caught up on ",
	"swapped ",
	"traded ",
	"shared ",
	"grabbed ",
	"went for ",
	"went ",
	"watched ",
	"played ",
	"ran ",
	"had ",
	"did ",
	"about ",
}

// AssembleSentence composes selected reflection tags into one fluent
// sentence. Topic and action tags form the opening, quality tags the
// middle, connection tags the closing; parts are joined with ". " and
// the result always ends in terminal punctuation. Empty input yields
// an empty string.
func AssembleSentence(tags []model.Chip) string {
	var opening, middle, closing []model.Chip
	for _, t := range tags {
		switch t.Slot {
		case model.SlotTopic, model.SlotAction:
			opening = append(opening, t)
		case model.SlotQuality:
			middle = append(middle, t)
		case model.SlotConnection:
			closing = append(closing, t)
		}
	}

	var parts []string

	if len(opening) == 1 {
		parts = append(parts, capitalize(opening[0].Template))
	} else if len(opening) > 1 {
		items := make([]string, 0, len(opening))
		for _, t := range opening {
			items = append(items, stripLeadingVerb(t.Template))
		}
		parts = append(parts, capitalize("talked about "+oxfordList(items)))
	}

	if len(middle) > 0 {
		joined := joinTemplates(middle, " and ")
		if len(parts) > 0 {
			parts = append(parts, "- "+joined)
		} else {
			parts = append(parts, capitalize(joined))
		}
	}

	if len(closing) > 0 {
		if len(parts) == 0 {
			// A closing with nothing before it stands on its own;
			// templates are kept verbatim.
			parts = append(parts, capitalize(joinTemplates(closing, " and ")))
		} else {
			items := make([]string, 0, len(closing))
			for _, t := range closing {
				items = append(items, strings.TrimPrefix(t.Template, "felt "))
			}
			parts = append(parts, "Felt "+strings.Join(items, " and "))
		}
	}

	if len(parts) == 0 {
		return ""
	}

	sentence := strings.Join(parts, ". ")
	if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") {
		sentence += "."
	}
	return sentence
}

func stripLeadingVerb(s string) string {
	for _, v := range leadingVerbs {
		if strings.HasPrefix(s, v) {
			return strings.TrimPrefix(s, v)
		}
	}
	return s
}

// oxfordList joins items as "A", "A and B", or "A, B, and C".
func oxfordList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

func joinTemplates(tags []model.Chip, sep string) string {
	items := make([]string, 0, len(tags))
	for _, t := range tags {
		items = append(items, t.Template)
	}
	return strings.Join(items, sep)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
