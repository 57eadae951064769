package search

import "math"

// Cosine computes the cosine similarity between two vectors.
//
// Vectors of unequal length are compared over their shared prefix. When
// either magnitude is zero the denominator is taken as 1, so the result
// is always finite and a zero vector scores 0 against anything.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, magA, magB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		magA += float64(v) * float64(v)
	}
	for _, v := range b {
		magB += float64(v) * float64(v)
	}

	denom := math.Sqrt(magA) * math.Sqrt(magB)
	if denom == 0 {
		denom = 1
	}
	return dot / denom
}
