package suggest

import "testing"

func TestSuggestCustomChip(t *testing.T) {
	notes := []string{
		"quick coffee chat",
		"quick coffee chat",
		"long walk in the park",
		"quick coffee chat",
	}

	got := SuggestCustomChip(notes, 3)
	if got == nil {
		t.Fatal("expected a suggestion")
	}
	if got.Text != "quick coffee chat" {
		t.Errorf("expected %q, got %q", "quick coffee chat", got.Text)
	}
	if got.Occurrences != 3 {
		t.Errorf("expected 3 occurrences, got %d", got.Occurrences)
	}
}

func TestSuggestCustomChipBelowThreshold(t *testing.T) {
	notes := []string{"quick coffee chat", "quick coffee chat"}
	if got := SuggestCustomChip(notes, 3); got != nil {
		t.Errorf("expected nil below threshold, got %+v", got)
	}
}

func TestSuggestCustomChipNormalizes(t *testing.T) {
	notes := []string{"  Quick Coffee Chat ", "quick coffee chat", "QUICK COFFEE CHAT"}
	got := SuggestCustomChip(notes, 3)
	if got == nil {
		t.Fatal("expected a suggestion after normalization")
	}
	if got.Text != "quick coffee chat" {
		t.Errorf("expected lower-cased trimmed text, got %q", got.Text)
	}
}

func TestSuggestCustomChipDiscardsShortStrings(t *testing.T) {
	notes := []string{"chat", "chat", "chat", "chat"}
	if got := SuggestCustomChip(notes, 3); got != nil {
		t.Errorf("expected nil for strings of length <= 5, got %+v", got)
	}
}

func TestSuggestCustomChipExactMatchOnly(t *testing.T) {
	// Near-duplicates are not merged; that is deliberate.
	notes := []string{"quick coffee", "quick coffee chat", "quick coffee break"}
	if got := SuggestCustomChip(notes, 3); got != nil {
		t.Errorf("expected nil for unmerged near-duplicates, got %+v", got)
	}
}

func TestSuggestCustomChipDefaultMinimum(t *testing.T) {
	notes := []string{"weekly standup walk", "weekly standup walk", "weekly standup walk"}
	got := SuggestCustomChip(notes, 0)
	if got == nil || got.Occurrences != 3 {
		t.Errorf("expected default minimum of 3 to apply, got %+v", got)
	}
}
