package embed

import (
	"math"
	"sort"
)

// Hit is one ranked result from an Index search.
type Hit struct {
	ID         int
	Similarity float64
}

// Index is an exact in-memory cosine similarity index. The vector at
// position i corresponds to row i of the table the vectors were attached to;
// it is read-only once built.
type Index struct {
	vectors [][]float32
}

func NewIndex(vectors [][]float32) *Index {
	return &Index{vectors: vectors}
}

// Len returns the number of indexed vectors.
func (ix *Index) Len() int { return len(ix.vectors) }

// Search ranks every indexed vector against query by cosine similarity and
// returns up to k hits, best first.
func (ix *Index) Search(query []float32, k int) []Hit {
	hits := make([]Hit, 0, len(ix.vectors))
	for i, v := range ix.vectors {
		hits = append(hits, Hit{ID: i, Similarity: Cosine(query, v)})
	}
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Similarity > hits[b].Similarity
	})
	if k >= 0 && len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

// Cosine computes cosine similarity between two vectors. Mismatched lengths
// and zero vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
