package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

func collect(t *testing.T, it *SliceIter) []Slice {
	t.Helper()
	var slices []Slice
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		slices = append(slices, s)
	}
	require.NoError(t, it.Err())
	return slices
}

// TestSlice_DisjointWindows tests window == step covers [min, max] without
// overlap and in increasing key order
func TestSlice_DisjointWindows(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2000), paper("C", 2001),
		paper("D", 2002), paper("E", 2003),
	}, testOptions())
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{WindowSize: 2, StepSize: 2})
	require.NoError(t, err)
	slices := collect(t, it)

	require.Len(t, slices, 2)
	assert.Equal(t, 2000, slices[0].Key)
	assert.Equal(t, 3, slices[0].Corpus.Len())
	assert.Equal(t, 2002, slices[1].Key)
	assert.Equal(t, 2, slices[1].Corpus.Len())
}

// TestSlice_SlidingWindows tests step 1 with a larger window overlaps
func TestSlice_SlidingWindows(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2001), paper("C", 2002),
	}, testOptions())
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{WindowSize: 2, StepSize: 1})
	require.NoError(t, err)
	slices := collect(t, it)

	require.Len(t, slices, 2)
	assert.Equal(t, 2000, slices[0].Key)
	assert.Equal(t, 2, slices[0].Corpus.Len())
	assert.Equal(t, 2001, slices[1].Key)
	assert.Equal(t, 2, slices[1].Corpus.Len())
}

// TestSlice_NoPartialTrailingWindow tests a window extending past the last
// year is never emitted
func TestSlice_NoPartialTrailingWindow(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2001), paper("C", 2002),
	}, testOptions())
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{WindowSize: 2, StepSize: 2})
	require.NoError(t, err)
	slices := collect(t, it)

	require.Len(t, slices, 1)
	assert.Equal(t, 2000, slices[0].Key)
}

// TestSlice_GapYears tests windows over years with no documents yield
// empty sub-corpora instead of failing
func TestSlice_GapYears(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2003),
	}, testOptions())
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{})
	require.NoError(t, err)
	slices := collect(t, it)

	require.Len(t, slices, 4)
	assert.Equal(t, []int{1, 0, 0, 1}, []int{
		slices[0].Corpus.Len(), slices[1].Corpus.Len(),
		slices[2].Corpus.Len(), slices[3].Corpus.Len(),
	})
}

// TestSlice_NoDatedDocuments tests slicing an undatable corpus fails
func TestSlice_NoDatedDocuments(t *testing.T) {
	c, err := NewCorpus([]domain.Document{paper("U", 0)}, testOptions())
	require.NoError(t, err)

	_, err = c.Slice(SliceOptions{})
	assert.ErrorIs(t, err, domain.ErrNoDateIndex)
}

// TestSlice_BuildsDateIndexOnDemand tests slicing works without an eager
// date index
func TestSlice_BuildsDateIndexOnDemand(t *testing.T) {
	c, err := NewCorpus([]domain.Document{paper("A", 2000)}, Options{
		IndexBy:       "id",
		IndexFields:   []string{},
		IndexFeatures: []string{},
	})
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{})
	require.NoError(t, err)
	slices := collect(t, it)
	require.Len(t, slices, 1)
	assert.Equal(t, 2000, slices[0].Key)
}

// TestSlice_Restartable tests each Slice call yields an independent cursor
func TestSlice_Restartable(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2001),
	}, testOptions())
	require.NoError(t, err)

	first, err := c.Slice(SliceOptions{})
	require.NoError(t, err)
	_, ok := first.Next()
	require.True(t, ok)

	second, err := c.Slice(SliceOptions{})
	require.NoError(t, err)
	s, ok := second.Next()
	require.True(t, ok)
	assert.Equal(t, 2000, s.Key)

	// Early abandonment of `first` has no side effects on `second`.
	s, ok = second.Next()
	require.True(t, ok)
	assert.Equal(t, 2001, s.Key)
}

// TestSlice_DefaultsBelowOne tests window and step below 1 normalize to 1
func TestSlice_DefaultsBelowOne(t *testing.T) {
	c, err := NewCorpus([]domain.Document{
		paper("A", 2000), paper("B", 2001),
	}, testOptions())
	require.NoError(t, err)

	it, err := c.Slice(SliceOptions{WindowSize: 0, StepSize: -3})
	require.NoError(t, err)
	assert.Len(t, collect(t, it), 2)
}
