package markdown

import "testing"

func TestBuildRecords_Dedup(t *testing.T) {
	nodes := []Node{
		{Tag: "p", Text: "alpha", Path: "alpha"},
		{Tag: "li", Text: "beta", Path: "beta"},
		{Tag: "h2", Text: "alpha", Path: "alpha"},
		{Tag: "p", Text: "gamma", Path: "gamma"},
	}
	records := BuildRecords(nodes, "doc.md", true)

	if len(records) != 3 {
		t.Fatalf("expected 3 records after dedup, got %d", len(records))
	}
	wantTexts := []string{"alpha", "beta", "gamma"}
	for i, want := range wantTexts {
		if records[i].Text != want {
			t.Errorf("record %d: expected text %q, got %q", i, want, records[i].Text)
		}
	}
	// First occurrence wins.
	if records[0].Tag != "p" {
		t.Errorf("expected first-seen tag p, got %s", records[0].Tag)
	}
}

func TestBuildRecords_DedupIdempotent(t *testing.T) {
	nodes := []Node{
		{Tag: "p", Text: "alpha"},
		{Tag: "p", Text: "alpha"},
		{Tag: "p", Text: "beta"},
	}
	once := BuildRecords(nodes, "doc.md", true)

	// Build again from the deduplicated rows.
	again := make([]Node, len(once))
	for i, r := range once {
		again[i] = Node{Tag: r.Tag, Text: r.Text, Path: r.Path}
	}
	twice := BuildRecords(again, "doc.md", true)

	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d vs %d rows", len(once), len(twice))
	}
	for i := range once {
		if once[i].Text != twice[i].Text {
			t.Errorf("row %d: %q vs %q", i, once[i].Text, twice[i].Text)
		}
	}
}

func TestBuildRecords_NoDedup(t *testing.T) {
	nodes := []Node{
		{Tag: "p", Text: "alpha"},
		{Tag: "p", Text: "alpha"},
	}
	records := BuildRecords(nodes, "doc.md", false)
	if len(records) != 2 {
		t.Fatalf("expected 2 records without dedup, got %d", len(records))
	}
}

func TestBuildRecords_EmptyPlaceholder(t *testing.T) {
	records := BuildRecords(nil, "empty.md", true)
	if len(records) != 1 {
		t.Fatalf("expected single placeholder row, got %d", len(records))
	}
	r := records[0]
	if r.File != "empty.md" {
		t.Errorf("expected file %q, got %q", "empty.md", r.File)
	}
	if r.Tag != "" || r.Text != "" || r.Path != "" {
		t.Errorf("expected empty tag/text/path, got %+v", r)
	}
	if r.Attrs != "{}" {
		t.Errorf("expected attrs %q, got %q", "{}", r.Attrs)
	}
}

func TestBuildRecords_AttrsDeterministic(t *testing.T) {
	nodes := []Node{
		{Tag: "p", Text: "alpha", Attrs: map[string]string{"title": "y", "href": "x"}},
	}
	want := `{"href":"x","title":"y"}`
	for n := 0; n < 5; n++ {
		records := BuildRecords(nodes, "", true)
		if records[0].Attrs != want {
			t.Fatalf("expected attrs %q, got %q", want, records[0].Attrs)
		}
	}
}

func TestToRecords_DedupAcrossCall(t *testing.T) {
	records, err := ToRecords("same\n\nsame\n\ndifferent", "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, r := range records {
		if seen[r.Text] {
			t.Errorf("duplicate text %q survived dedup", r.Text)
		}
		seen[r.Text] = true
	}
}
