package dataset

import (
	"testing"

	"github.com/snackscan/backend/internal/domain"
)

func TestLookup(t *testing.T) {
	d := New()
	if d.Len() == 0 {
		t.Fatal("dataset is empty")
	}

	t.Run("exact match", func(t *testing.T) {
		facts, real := d.Lookup("Snickers Chocolate Bar")
		if !real {
			t.Fatal("expected a real dataset entry")
		}
		if facts.Calories != 250 {
			t.Errorf("calories = %v, want 250", facts.Calories)
		}
		if facts.Source != domain.SourceMock {
			t.Errorf("source = %s, want %s", facts.Source, domain.SourceMock)
		}
	})

	t.Run("match ignores case and punctuation", func(t *testing.T) {
		facts, real := d.Lookup("  snickers   CHOCOLATE bar!! ")
		if !real {
			t.Fatal("expected a real dataset entry")
		}
		if facts.Name != "Snickers Chocolate Bar" {
			t.Errorf("name = %q, want the canonical entry name", facts.Name)
		}
	})

	t.Run("substring match", func(t *testing.T) {
		facts, real := d.Lookup("Snickers")
		if !real {
			t.Fatal("expected a real dataset entry")
		}
		if facts.Calories != 250 {
			t.Errorf("calories = %v, want 250", facts.Calories)
		}
	})

	t.Run("token overlap match", func(t *testing.T) {
		// "bottled" is missing but both remaining tokens hit the entry.
		_, real := d.Lookup("dasani water")
		if !real {
			t.Error("expected a token-overlap match for dasani water")
		}
	})

	t.Run("misspelling within edit distance", func(t *testing.T) {
		_, real := d.Lookup("snikers chocolate bar")
		if !real {
			t.Error("expected a fuzzy match for a one-letter typo")
		}
	})

	t.Run("unknown name yields a generic estimate", func(t *testing.T) {
		facts, real := d.Lookup("Zanzibar Moon Biscuit")
		if real {
			t.Fatal("expected the generic estimate, got a real entry")
		}
		if facts.Name != "Zanzibar Moon Biscuit" {
			t.Errorf("name = %q, want the requested name", facts.Name)
		}
		if facts.Calories != 150 || facts.ServingSize != "1 serving" {
			t.Errorf("estimate = %v cal / %q, want 150 cal per serving", facts.Calories, facts.ServingSize)
		}
		if facts.Source != domain.SourceMock {
			t.Errorf("source = %s, want %s", facts.Source, domain.SourceMock)
		}
	})

	t.Run("empty name still yields an estimate", func(t *testing.T) {
		facts, real := d.Lookup("")
		if real {
			t.Error("empty name matched a real entry")
		}
		if facts == nil {
			t.Fatal("expected generic facts")
		}
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		first, _ := d.Lookup("Snickers Chocolate Bar")
		first.Calories = 9999
		second, _ := d.Lookup("Snickers Chocolate Bar")
		if second.Calories == 9999 {
			t.Error("mutating a result changed dataset state")
		}
	})

	t.Run("every entry passes validation", func(t *testing.T) {
		for _, e := range entries {
			facts, real := d.Lookup(e.Name)
			if !real {
				t.Errorf("entry %q does not resolve to itself", e.Name)
				continue
			}
			if !facts.Valid() {
				t.Errorf("entry %q fails validation", e.Name)
			}
		}
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Reese's  Peanut-Butter Cups", "reese s peanut butter cups"},
		{"M&Ms Milk Chocolate", "m ms milk chocolate"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		if got := normalize(tt.input); got != tt.expected {
			t.Errorf("normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"snickers", "snikers", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.s1, tt.s2); got != tt.expected {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.s1, tt.s2, got, tt.expected)
		}
	}
}

func TestFuzzyTokenMatch(t *testing.T) {
	tests := []struct {
		t1, t2   string
		expected bool
	}{
		{"snickers", "snikers", true},
		{"chips", "chips", true},
		{"bar", "car", false}, // short tokens need exact equality
		{"water", "crater", false},
	}
	for _, tt := range tests {
		if got := fuzzyTokenMatch(tt.t1, tt.t2, 1); got != tt.expected {
			t.Errorf("fuzzyTokenMatch(%q, %q) = %v, want %v", tt.t1, tt.t2, got, tt.expected)
		}
	}
}
