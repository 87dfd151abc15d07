package tickerindex

import (
	"hash/fnv"
	"math"
	"strings"
)

// embeddingDim is the bucket count for trigram feature hashing. Large enough
// that short company names rarely collide, small enough that a full catalog
// scan stays trivial.
const embeddingDim = 128

// Embed maps text to a deterministic unit vector of its character trigrams.
// Identical strings embed identically and strings sharing trigrams land
// close together, which is the property nearest-name lookup relies on.
// Whitespace runs and letter case do not affect the result. Empty or
// all-whitespace text returns the zero vector.
func Embed(text string) []float64 {
	vec := make([]float64, embeddingDim)
	normalized := normalizeText(text)
	if normalized == "" {
		return vec
	}
	// Pad so leading and trailing characters form boundary trigrams.
	padded := " " + normalized + " "
	for i := 0; i+3 <= len(padded); i++ {
		h := fnv.New32a()
		h.Write([]byte(padded[i : i+3]))
		vec[h.Sum32()%embeddingDim]++
	}
	return normalizeVector(vec)
}

func normalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// normalizeVector scales vec to unit length in place. The zero vector is
// returned unchanged.
func normalizeVector(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return vec
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// dot is the cosine similarity of two unit vectors.
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}
