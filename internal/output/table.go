package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmmx/mdbed/internal/files"
	"github.com/lmmx/mdbed/internal/graph"
)

var (
	// headerStyle for column headers
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for provenance columns
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// scoreStyle for similarity scores
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
)

const (
	fileColWidth = 24
	textColWidth = 40
)

// RenderEdges formats similarity edges as a console table: source and target
// provenance plus the score, one edge per line, in the order given.
func RenderEdges(edges []graph.Edge) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s %s %s %s %10s",
		cell("source_file", fileColWidth),
		cell("source_text", textColWidth),
		cell("target_file", fileColWidth),
		cell("target_text", textColWidth),
		"similarity",
	)))
	sb.WriteByte('\n')

	for _, e := range edges {
		sb.WriteString(dimStyle.Render(cell(e.SourceFile, fileColWidth)))
		sb.WriteByte(' ')
		sb.WriteString(cell(e.SourceText, textColWidth))
		sb.WriteByte(' ')
		sb.WriteString(dimStyle.Render(cell(e.TargetFile, fileColWidth)))
		sb.WriteByte(' ')
		sb.WriteString(cell(e.TargetText, textColWidth))
		sb.WriteByte(' ')
		sb.WriteString(scoreStyle.Render(fmt.Sprintf("%10.4f", e.Similarity)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderFiles formats enumerated files as a two-column listing.
func RenderFiles(entries []files.Entry) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%s %s",
		cell("path", 2*fileColWidth),
		"name",
	)))
	sb.WriteByte('\n')
	for _, e := range entries {
		sb.WriteString(cell(e.Path, 2*fileColWidth))
		sb.WriteByte(' ')
		sb.WriteString(dimStyle.Render(e.Name))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cell truncates and pads before styling so ANSI codes never skew alignment.
func cell(s string, width int) string {
	if len(s) > width {
		if width > 3 {
			s = s[:width-3] + "..."
		} else {
			s = s[:width]
		}
	}
	return fmt.Sprintf("%-*s", width, s)
}
