package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// Render converts markdown source to an HTML fragment. The extractor treats
// the result as an opaque event source.
func Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
