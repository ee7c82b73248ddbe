package quotes

import (
	"math/rand"
	"testing"
)

func loadStore(t *testing.T) *Store {
	t.Helper()
	s, err := Load(rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoadEmbedded(t *testing.T) {
	s := loadStore(t)
	if s.Len() != 20 {
		t.Errorf("Len = %d, want 20", s.Len())
	}
	cats := s.Categories()
	if len(cats) != 3 {
		t.Errorf("categories = %v, want zen, vedic, ai", cats)
	}
}

func TestRandomReturnsOnlyListedQuotes(t *testing.T) {
	s := loadStore(t)
	listed := map[Quote]bool{}
	for _, q := range s.All() {
		listed[q] = true
	}
	for i := 0; i < 500; i++ {
		if q := s.Random(); !listed[q] {
			t.Fatalf("Random returned unlisted quote %+v", q)
		}
	}
}

func TestByCategoryFilters(t *testing.T) {
	s := loadStore(t)
	for i := 0; i < 200; i++ {
		q, ok := s.ByCategory("zen")
		if !ok {
			t.Fatal("expected zen quotes")
		}
		if q.Category != "zen" {
			t.Fatalf("ByCategory(zen) returned %q", q.Category)
		}
	}
}

func TestByCategoryUnknown(t *testing.T) {
	s := loadStore(t)
	if _, ok := s.ByCategory("stoic"); ok {
		t.Error("unknown category should report ok=false")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", "quotes: []"},
		{"bad yaml", "quotes: [text: \"unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestAllIsCopy(t *testing.T) {
	s := New([]Quote{{Text: "a", Category: "zen"}}, nil)
	all := s.All()
	all[0].Text = "changed"
	if s.Random().Text != "a" {
		t.Error("All must not expose internal slice")
	}
}
