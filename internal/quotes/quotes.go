// Package quotes serves the static list of zen, vedic and "ai" quotations.
package quotes

import (
	"fmt"
	"math/rand"

	"github.com/iburimskiy/zen-garden/internal/content"
	"gopkg.in/yaml.v3"
)

// Quote is an immutable quotation
type Quote struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
	Author   string `yaml:"author"`
}

// Store picks quotes at random, with replacement
type Store struct {
	quotes     []Quote
	byCategory map[string][]Quote
	rng        *rand.Rand
}

// Parse builds a Store from YAML data with a top-level "quotes" list.
func Parse(data []byte, rng *rand.Rand) (*Store, error) {
	var doc struct {
		Quotes []Quote `yaml:"quotes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse quotes: %w", err)
	}
	if len(doc.Quotes) == 0 {
		return nil, fmt.Errorf("parse quotes: empty list")
	}
	return New(doc.Quotes, rng), nil
}

// Load reads the embedded quote list.
func Load(rng *rand.Rand) (*Store, error) {
	data, err := content.ReadFile(content.QuotesFile)
	if err != nil {
		return nil, err
	}
	return Parse(data, rng)
}

// New creates a Store over qs. A nil rng uses a time-seeded source.
func New(qs []Quote, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Store{
		quotes:     append([]Quote(nil), qs...),
		byCategory: make(map[string][]Quote),
		rng:        rng,
	}
	for _, q := range s.quotes {
		s.byCategory[q.Category] = append(s.byCategory[q.Category], q)
	}
	return s
}

// All returns a copy of every quote.
func (s *Store) All() []Quote {
	return append([]Quote(nil), s.quotes...)
}

func (s *Store) Len() int { return len(s.quotes) }

// Random returns a uniformly chosen quote.
func (s *Store) Random() Quote {
	return s.quotes[s.rng.Intn(len(s.quotes))]
}

// ByCategory returns a random quote of the given category. ok is false when
// the category has no quotes.
func (s *Store) ByCategory(category string) (q Quote, ok bool) {
	list := s.byCategory[category]
	if len(list) == 0 {
		return Quote{}, false
	}
	return list[s.rng.Intn(len(list))], true
}

// Categories lists the categories present in the store.
func (s *Store) Categories() []string {
	out := make([]string, 0, len(s.byCategory))
	seen := map[string]bool{}
	for _, q := range s.quotes {
		if !seen[q.Category] {
			seen[q.Category] = true
			out = append(out, q.Category)
		}
	}
	return out
}
