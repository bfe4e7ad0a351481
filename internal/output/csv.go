package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lmmx/mdbed/internal/graph"
)

var edgeHeader = []string{
	"source_id", "target_id", "similarity",
	"source_file", "source_tag", "source_text", "source_path",
	"target_file", "target_tag", "target_text", "target_path",
}

// WriteCSV writes the edge table as delimited text. The header row is always
// written so an empty edge set still yields a well-formed schema.
func WriteCSV(w io.Writer, edges []graph.Edge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(edgeHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range edges {
		row := []string{
			strconv.Itoa(e.SourceID),
			strconv.Itoa(e.TargetID),
			strconv.FormatFloat(e.Similarity, 'f', -1, 64),
			e.SourceFile, e.SourceTag, e.SourceText, e.SourcePath,
			e.TargetFile, e.TargetTag, e.TargetText, e.TargetPath,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
