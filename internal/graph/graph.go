package graph

import (
	"context"
	"fmt"
	"sort"

	"github.com/lmmx/mdbed/internal/embed"
	"github.com/lmmx/mdbed/internal/markdown"
)

// Searcher ranks candidate rows against a query vector. The graph builder
// delegates all scoring to it and only applies selection policy.
type Searcher interface {
	Search(query []float32, k int) []embed.Hit
}

// Edge is one directed, thresholded similarity relationship between two rows
// of the node table. SourceID and TargetID are positional row indices, valid
// for the lifetime of one FindSimilar call.
type Edge struct {
	SourceID   int
	TargetID   int
	Similarity float64
	SourceFile string
	SourceTag  string
	SourceText string
	SourcePath string
	TargetFile string
	TargetTag  string
	TargetText string
	TargetPath string
}

// FindSimilar computes every directed node pair scoring at or above
// threshold. Each row's vector is queried against the full set; a returned
// row j yields edge (i,j) iff j != i and the score clears the threshold.
// Pairs are not deduplicated across directions: the engine is queried per
// source row and its result sets need not be symmetric, so (i,j) and (j,i)
// are evaluated independently. The result is sorted by similarity descending
// and is empty, not nil, when nothing qualifies.
//
// Queries run on a bounded worker pool. Results land in per-row slots so the
// output is deterministic regardless of scheduling, and one row's failure
// cannot corrupt another row's edges.
func FindSimilar(ctx context.Context, records []markdown.Record, vectors [][]float32, index Searcher, threshold float64, workers int) ([]Edge, error) {
	if len(records) != len(vectors) {
		return nil, fmt.Errorf("records/vectors length mismatch: %d vs %d", len(records), len(vectors))
	}
	if workers <= 0 {
		workers = 1
	}

	edges := make([]Edge, 0)
	n := len(records)
	if n == 0 {
		return edges, nil
	}

	perRow := make([][]Edge, n)
	sem := make(chan struct{}, workers)
	done := make(chan struct{}, n)

	launched := 0
	for i := 0; i < n; i++ {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		launched++
		go func(i int) {
			defer func() {
				<-sem
				done <- struct{}{}
			}()
			hits := index.Search(vectors[i], n)
			var row []Edge
			for _, h := range hits {
				if h.ID == i || h.Similarity < threshold {
					continue
				}
				row = append(row, joinEdge(records, i, h.ID, h.Similarity))
			}
			perRow[i] = row
		}(i)
	}
	for k := 0; k < launched; k++ {
		<-done
	}

	for _, row := range perRow {
		edges = append(edges, row...)
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Similarity > edges[b].Similarity
	})
	return edges, nil
}

// joinEdge attaches source and target metadata from the node table.
func joinEdge(records []markdown.Record, i, j int, sim float64) Edge {
	src, tgt := records[i], records[j]
	return Edge{
		SourceID:   i,
		TargetID:   j,
		Similarity: sim,
		SourceFile: src.File,
		SourceTag:  src.Tag,
		SourceText: src.Text,
		SourcePath: src.Path,
		TargetFile: tgt.File,
		TargetTag:  tgt.Tag,
		TargetText: tgt.Text,
		TargetPath: tgt.Path,
	}
}
