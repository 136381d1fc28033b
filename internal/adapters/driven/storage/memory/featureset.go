// Package memory provides the in-memory feature store adapter. A corpus
// lives for one analysis session, so features are held in plain maps with
// an explicit insertion order and no persistence.
package memory

import (
	"sort"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// Ensure FeatureSet implements the interface.
var _ driven.FeatureStore = (*FeatureSet)(nil)

// FeatureSet is an in-memory implementation of driven.FeatureStore.
// Entries are never mutated after Add, so a filtered corpus may share
// Feature values with its parent safely.
type FeatureSet struct {
	order    []string
	features map[string]domain.Feature
}

// NewFeatureSet creates an empty in-memory feature store.
func NewFeatureSet() *FeatureSet {
	return &FeatureSet{features: make(map[string]domain.Feature)}
}

// Add stores the feature for a document key. Re-adding a key replaces its
// feature without changing its position.
func (s *FeatureSet) Add(docID string, f domain.Feature) {
	if _, exists := s.features[docID]; !exists {
		s.order = append(s.order, docID)
	}
	s.features[docID] = f
}

// Get returns the feature held for a document key.
func (s *FeatureSet) Get(docID string) (domain.Feature, bool) {
	f, ok := s.features[docID]
	return f, ok
}

// Items returns all held entries in insertion order.
func (s *FeatureSet) Items() []driven.FeatureEntry {
	entries := make([]driven.FeatureEntry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, driven.FeatureEntry{DocID: id, Feature: s.features[id]})
	}
	return entries
}

// Len returns the number of documents held.
func (s *FeatureSet) Len() int {
	return len(s.order)
}

// Count returns the aggregate weight of a token across all held features.
func (s *FeatureSet) Count(token domain.Key) float64 {
	var total float64
	for _, f := range s.features {
		total += f.Weight(token)
	}
	return total
}

// DocumentCount returns the number of documents whose feature contains the
// token.
func (s *FeatureSet) DocumentCount(token domain.Key) int {
	var n int
	for _, f := range s.features {
		if f.Contains(token) {
			n++
		}
	}
	return n
}

// Top returns the n highest-ranked tokens by the chosen statistic. Ties
// break on token display order so rankings are deterministic.
func (s *FeatureSet) Top(n int, by driven.RankBy) []driven.RankedToken {
	if n <= 0 {
		return nil
	}

	scores := make(map[domain.Key]float64)
	for _, f := range s.features {
		for _, item := range f {
			if by == driven.ByDocumentCounts {
				scores[item.Token]++
			} else {
				scores[item.Token] += item.Weight
			}
		}
	}

	ranked := make([]driven.RankedToken, 0, len(scores))
	for token, score := range scores {
		ranked = append(ranked, driven.RankedToken{Token: token, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Token.String() < ranked[j].Token.String()
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
