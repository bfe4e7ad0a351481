package markdown

import "encoding/json"

// Record is one row of the node table assembled per source file.
type Record struct {
	File  string
	Tag   string
	Text  string
	Attrs string // attributes serialized as sorted-key JSON
	Path  string
}

// BuildRecords converts extracted nodes into table rows for one file. An
// empty node list yields a single placeholder row so the schema survives
// concatenation downstream. When dedup is set, rows repeating an earlier
// row's exact text are dropped, keeping first-seen order. Dedup is scoped to
// this call: the same text may reappear across files.
func BuildRecords(nodes []Node, file string, dedup bool) []Record {
	if len(nodes) == 0 {
		return []Record{{File: file, Attrs: "{}"}}
	}

	records := make([]Record, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if dedup {
			if seen[n.Text] {
				continue
			}
			seen[n.Text] = true
		}
		records = append(records, Record{
			File:  file,
			Tag:   n.Tag,
			Text:  n.Text,
			Attrs: serializeAttrs(n.Attrs),
			Path:  n.Path,
		})
	}
	return records
}

// serializeAttrs renders attributes deterministically: json.Marshal emits
// map keys in sorted order.
func serializeAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "{}"
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ToRecords renders, extracts, and tabulates one document in a single call.
func ToRecords(content, file string) ([]Record, error) {
	nodes, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return BuildRecords(nodes, file, true), nil
}
