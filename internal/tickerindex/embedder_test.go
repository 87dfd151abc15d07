package tickerindex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedDeterministic(t *testing.T) {
	a := Embed("NVDA NVIDIA Corporation")
	b := Embed("NVDA NVIDIA Corporation")
	assert.Equal(t, a, b)
}

func TestEmbedNormalizesCaseAndWhitespace(t *testing.T) {
	a := Embed("Bank of America")
	b := Embed("  bank   OF  america ")
	assert.Equal(t, a, b)
}

func TestEmbedProducesUnitVectors(t *testing.T) {
	for _, text := range []string{"A", "GE", "Apple Inc.", "International Business Machines Corporation"} {
		vec := Embed(text)
		require.Len(t, vec, embeddingDim)

		var sum float64
		for _, v := range vec {
			assert.GreaterOrEqual(t, v, 0.0, "trigram counts never go negative")
			sum += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9, "text %q", text)
	}
}

func TestEmbedEmptyTextIsZero(t *testing.T) {
	assert.True(t, isZero(Embed("")))
	assert.True(t, isZero(Embed("   ")))
	assert.False(t, isZero(Embed("x")))
}

func TestDotOfIdenticalTextIsOne(t *testing.T) {
	a := Embed("Apple Inc.")
	assert.InDelta(t, 1.0, dot(a, a), 1e-9)
}

func TestDotOrdersBySharedTrigrams(t *testing.T) {
	query := Embed("Nvidia")
	related := Embed("NVDA NVIDIA Corporation")
	unrelated := Embed("KO Coca-Cola Company")

	assert.Greater(t, dot(query, related), dot(query, unrelated))
}
