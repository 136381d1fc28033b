package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFeatureFromValue_WeightedTokens tests weights are preserved
func TestFeatureFromValue_WeightedTokens(t *testing.T) {
	f := FeatureFromValue(List{
		Token{Value: String("x"), Weight: 1},
		Token{Value: String("y"), Weight: 2},
	})
	require.Len(t, f, 2)
	assert.Equal(t, 1.0, f.Weight(StringKey("x")))
	assert.Equal(t, 2.0, f.Weight(StringKey("y")))
}

// TestFeatureFromValue_Multiplicity tests unweighted elements count their
// occurrences
func TestFeatureFromValue_Multiplicity(t *testing.T) {
	f := FeatureFromValue(List{String("a"), String("b"), String("a")})
	require.Len(t, f, 2)
	assert.Equal(t, 2.0, f.Weight(StringKey("a")))
	assert.Equal(t, 1.0, f.Weight(StringKey("b")))
	// First-seen order is preserved.
	assert.Equal(t, StringKey("a"), f[0].Token)
	assert.Equal(t, StringKey("b"), f[1].Token)
}

// TestFeatureFromValue_RepeatedWeighted tests repeated weighted tokens sum
func TestFeatureFromValue_RepeatedWeighted(t *testing.T) {
	f := FeatureFromValue(List{
		Token{Value: String("x"), Weight: 1.5},
		Token{Value: String("x"), Weight: 0.5},
	})
	require.Len(t, f, 1)
	assert.Equal(t, 2.0, f.Weight(StringKey("x")))
}

// TestFeatureFromValue_Scalar tests scalar wrapping
func TestFeatureFromValue_Scalar(t *testing.T) {
	f := FeatureFromValue(String("only"))
	require.Len(t, f, 1)
	assert.True(t, f.Contains(StringKey("only")))
	assert.False(t, f.Contains(StringKey("other")))
	assert.Equal(t, 0.0, f.Weight(StringKey("other")))
}
