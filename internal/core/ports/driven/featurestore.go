package driven

import (
	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// RankBy selects the statistic used for feature counting and ranking.
type RankBy string

const (
	// ByCounts ranks by the sum of token weights across documents.
	ByCounts RankBy = "counts"

	// ByDocumentCounts ranks by the number of documents containing the
	// token.
	ByDocumentCounts RankBy = "documentCounts"
)

// FeatureEntry is one (document key, feature) pair held by a store.
type FeatureEntry struct {
	DocID   string
	Feature domain.Feature
}

// RankedToken is one entry of a Top ranking.
type RankedToken struct {
	Token domain.Key
	Score float64
}

// FeatureStore holds one named collection of per-document features and
// answers aggregate queries over it. Stores are built once at corpus
// construction and treated as read-only afterward; filtering a corpus
// copies entries rather than recomputing features, so statistics stay
// relative to the original collection.
type FeatureStore interface {
	// Add stores the feature for a document key.
	Add(docID string, f domain.Feature)

	// Get returns the feature held for a document key.
	Get(docID string) (domain.Feature, bool)

	// Items returns all held entries in insertion order.
	Items() []FeatureEntry

	// Len returns the number of documents held.
	Len() int

	// Count returns the aggregate weight of a token across all held
	// features.
	Count(token domain.Key) float64

	// DocumentCount returns the number of documents whose feature
	// contains the token.
	DocumentCount(token domain.Key) int

	// Top returns the n highest-ranked tokens by the chosen statistic,
	// in decreasing score order.
	Top(n int, by RankBy) []RankedToken
}

// FeatureStoreFactory constructs empty feature stores for a corpus.
type FeatureStoreFactory func() FeatureStore
