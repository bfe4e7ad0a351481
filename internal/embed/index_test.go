package embed

import (
	"math"
	"testing"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"scaled", []float32{2, 0}, []float32{5, 0}, 1},
		{"length mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIndex_Search(t *testing.T) {
	ix := NewIndex([][]float32{
		{1, 0},
		{0.9, 0.4358898943540674}, // cos against [1,0] = 0.9
		{0, 1},
	})

	hits := ix.Search([]float32{1, 0}, 3)
	if len(hits) != 3 {
		t.Fatalf("expected 3 hits, got %d", len(hits))
	}
	// Best first: self, then the 0.9 neighbor, then orthogonal.
	if hits[0].ID != 0 || math.Abs(hits[0].Similarity-1) > 1e-6 {
		t.Errorf("expected self hit first, got %+v", hits[0])
	}
	if hits[1].ID != 1 || math.Abs(hits[1].Similarity-0.9) > 1e-6 {
		t.Errorf("expected neighbor second with sim 0.9, got %+v", hits[1])
	}
	if hits[2].ID != 2 {
		t.Errorf("expected orthogonal hit last, got %+v", hits[2])
	}
}

func TestIndex_SearchCapsAtK(t *testing.T) {
	ix := NewIndex([][]float32{{1, 0}, {0, 1}, {1, 1}})
	hits := ix.Search([]float32{1, 0}, 2)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
}

func TestIndex_Empty(t *testing.T) {
	ix := NewIndex(nil)
	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d", ix.Len())
	}
	if hits := ix.Search([]float32{1}, 10); len(hits) != 0 {
		t.Errorf("expected no hits, got %d", len(hits))
	}
}
