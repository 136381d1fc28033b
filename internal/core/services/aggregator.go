package services

import (
	"fmt"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
	"github.com/custodia-labs/corpora-cli/internal/core/ports/driven"
)

// SliceTop pairs a window key with the top-ranked tokens of that window.
type SliceTop struct {
	Key int
	Top []driven.RankedToken
}

// Distribution returns the number of documents in each slice, in slice
// order.
func (c *Corpus) Distribution(opts SliceOptions) ([]int, error) {
	it, err := c.Slice(opts)
	if err != nil {
		return nil, err
	}

	var counts []int
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		counts = append(counts, s.Corpus.Len())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// FeatureDistribution returns the per-slice value of one token from a
// named feature store: the sum of its count weights (ByCounts) or the
// number of documents containing it (ByDocumentCounts). The returned
// window keys and values are parallel.
func (c *Corpus) FeatureDistribution(
	name string, token domain.Key, mode driven.RankBy, opts SliceOptions,
) (keys []int, values []float64, err error) {
	if _, ok := c.features[name]; !ok {
		return nil, nil, fmt.Errorf("feature set %q: %w", name, domain.ErrNotFound)
	}

	it, err := c.Slice(opts)
	if err != nil {
		return nil, nil, err
	}

	for s, ok := it.Next(); ok; s, ok = it.Next() {
		store, _ := s.Corpus.Features(name)
		var value float64
		if mode == driven.ByDocumentCounts {
			value = float64(store.DocumentCount(token))
		} else {
			value = store.Count(token)
		}
		keys = append(keys, s.Key)
		values = append(values, value)
	}
	if err := it.Err(); err != nil {
		return nil, nil, err
	}
	return keys, values, nil
}

// TopFeatures returns the n highest-ranked tokens of a named feature store
// across the whole corpus.
func (c *Corpus) TopFeatures(name string, n int, by driven.RankBy) ([]driven.RankedToken, error) {
	store, ok := c.features[name]
	if !ok {
		return nil, fmt.Errorf("feature set %q: %w", name, domain.ErrNotFound)
	}
	return store.Top(n, by), nil
}

// TopFeaturesPerSlice returns one ranking per slice, each computed on that
// slice's filtered feature store.
func (c *Corpus) TopFeaturesPerSlice(
	name string, n int, by driven.RankBy, opts SliceOptions,
) ([]SliceTop, error) {
	if _, ok := c.features[name]; !ok {
		return nil, fmt.Errorf("feature set %q: %w", name, domain.ErrNotFound)
	}

	it, err := c.Slice(opts)
	if err != nil {
		return nil, err
	}

	var tops []SliceTop
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		store, _ := s.Corpus.Features(name)
		tops = append(tops, SliceTop{Key: s.Key, Top: store.Top(n, by)})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return tops, nil
}
