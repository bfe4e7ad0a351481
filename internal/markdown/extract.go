package markdown

import "strings"

// leafTags are element types whose entire text content is treated as one
// atomic unit regardless of nested inline markup.
var leafTags = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"blockquote": true,
	"code":       true,
}

// Node is a flattened text-bearing unit extracted from rendered markdown.
// For synthesized text nodes Path holds the slash-joined ancestor chain at
// capture time; for element nodes it carries the node's own trimmed text as
// a display label.
type Node struct {
	Tag   string
	Text  string
	Attrs map[string]string
	Path  string
}

// treeNode is one element observed during traversal. The tree shape exists
// only while events are consumed; output is a flat projection.
type treeNode struct {
	tag      string
	text     string
	attrs    map[string]string
	children []*treeNode
	path     string // recorded for synthesized text nodes only
}

// Extractor reconstructs element structure from a flat event stream and
// collects text-bearing nodes in encounter order. Use NewExtractor; the zero
// value has no root sentinel.
type Extractor struct {
	nodes     []*treeNode // registered output candidates
	current   *treeNode   // innermost open node; the root sentinel has an empty tag
	stack     []*treeNode
	path      []string
	leafDepth int // how many leaf tags are currently open
}

func NewExtractor() *Extractor {
	return &Extractor{current: &treeNode{attrs: map[string]string{}}}
}

// Feed consumes one event and updates traversal state.
func (e *Extractor) Feed(ev Event) {
	switch ev.Kind {
	case StartTag:
		e.handleStart(ev.Tag, ev.Attrs)
	case EndTag:
		e.handleEnd(ev.Tag)
	case Text:
		e.handleText(ev.Data)
	}
}

// Run consumes an entire event stream in order.
func (e *Extractor) Run(events []Event) {
	for _, ev := range events {
		e.Feed(ev)
	}
}

func (e *Extractor) handleStart(tag string, attrs map[string]string) {
	if leafTags[tag] {
		e.leafDepth++
	}

	parent := e.current
	e.stack = append(e.stack, parent)

	if attrs == nil {
		attrs = map[string]string{}
	}
	node := &treeNode{tag: tag, attrs: attrs}

	if parent.tag == "" {
		// Root-level element.
		e.nodes = append(e.nodes, node)
	} else if e.leafDepth <= 1 {
		parent.children = append(parent.children, node)
		// Leaf tags are output candidates wherever they appear.
		if leafTags[tag] {
			e.nodes = append(e.nodes, node)
		}
	}

	e.current = node
	e.path = append(e.path, tag)
}

func (e *Extractor) handleEnd(tag string) {
	if leafTags[tag] && e.leafDepth > 0 {
		e.leafDepth--
	}
	// An unmatched end tag leaves the current node at the root sentinel.
	if n := len(e.stack); n > 0 {
		e.current = e.stack[n-1]
		e.stack = e.stack[:n-1]
	}
	if n := len(e.path); n > 0 && e.path[n-1] == tag {
		e.path = e.path[:n-1]
	}
}

func (e *Extractor) handleText(data string) {
	if e.current.tag == "" {
		return
	}
	e.current.text += data

	// Stray text outside any leaf container becomes its own node. Text
	// inside a leaf is absorbed above and must not be counted twice.
	if trimmed := strings.TrimSpace(data); trimmed != "" && e.leafDepth == 0 {
		e.nodes = append(e.nodes, &treeNode{
			tag:   "text",
			text:  trimmed,
			attrs: map[string]string{},
			path:  strings.Join(e.path, "/"),
		})
	}
}

// NodesWithText returns, in registration order, every collected node whose
// trimmed text is non-empty.
func (e *Extractor) NodesWithText() []Node {
	var out []Node
	for _, n := range e.nodes {
		text := strings.TrimSpace(n.text)
		if text == "" {
			continue
		}
		path := text
		if n.tag == "text" {
			path = n.path
		}
		out = append(out, Node{Tag: n.tag, Text: text, Attrs: n.attrs, Path: path})
	}
	return out
}

// Parse renders markdown and extracts its text-bearing nodes.
func Parse(content string) ([]Node, error) {
	htmlContent, err := Render([]byte(content))
	if err != nil {
		return nil, err
	}
	ex := NewExtractor()
	ex.Run(Tokenize(htmlContent))
	return ex.NodesWithText(), nil
}
