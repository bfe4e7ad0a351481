package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// EventKind discriminates the three token kinds the extractor consumes.
type EventKind int

const (
	StartTag EventKind = iota
	EndTag
	Text
)

// Event is one HTML token from the rendered document.
type Event struct {
	Kind  EventKind
	Tag   string            // element name for StartTag/EndTag
	Attrs map[string]string // attributes for StartTag
	Data  string            // text content for Text
}

// Tokenize converts rendered HTML into the flat event stream the extractor
// consumes. A self-closing element emits its StartTag immediately followed
// by the matching EndTag.
func Tokenize(htmlContent string) []Event {
	z := html.NewTokenizer(strings.NewReader(htmlContent))
	var events []Event
	for {
		switch z.Next() {
		case html.ErrorToken:
			return events
		case html.StartTagToken:
			tok := z.Token()
			events = append(events, Event{Kind: StartTag, Tag: tok.Data, Attrs: attrMap(tok.Attr)})
		case html.SelfClosingTagToken:
			tok := z.Token()
			events = append(events,
				Event{Kind: StartTag, Tag: tok.Data, Attrs: attrMap(tok.Attr)},
				Event{Kind: EndTag, Tag: tok.Data})
		case html.EndTagToken:
			tok := z.Token()
			events = append(events, Event{Kind: EndTag, Tag: tok.Data})
		case html.TextToken:
			events = append(events, Event{Kind: Text, Data: z.Token().Data})
		}
	}
}

func attrMap(attrs []html.Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Val
	}
	return m
}
