package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONRenderer_Document(t *testing.T) {
	var buf bytes.Buffer
	renderSample(t, NewJSONRenderer(&buf))

	var doc reportDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v\noutput:\n%s", err, buf.String())
	}

	if doc.Title != "Changelog" {
		t.Errorf("Title = %q, expected %q", doc.Title, "Changelog")
	}
	if len(doc.Entries) != 3 {
		t.Fatalf("Entries = %d, expected 3", len(doc.Entries))
	}

	kinds := []string{doc.Entries[0].Kind, doc.Entries[1].Kind, doc.Entries[2].Kind}
	expected := []string{"commit", "tag", "commit"}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("entry %d kind = %q, expected %q", i, kinds[i], expected[i])
		}
	}

	first := doc.Entries[0]
	if first.Hash != strings.Repeat("a", 40) {
		t.Errorf("first entry hash = %q", first.Hash)
	}
	if first.Message != "add feature #42" {
		t.Errorf("first entry message = %q, expected subject line only", first.Message)
	}
	if first.When != "1970-01-01T00:05:00Z" {
		t.Errorf("first entry when = %q", first.When)
	}

	tag := doc.Entries[1]
	if tag.Name != "v1.0.0" {
		t.Errorf("tag entry name = %q", tag.Name)
	}
	if tag.Hash != strings.Repeat("b", 40) {
		t.Errorf("tag entry hash = %q, expected target commit", tag.Hash)
	}
}

func TestJSONRenderer_EmptyChangelog(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	if err := r.RenderHeader("Changelog"); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	if err := r.RenderFooter(); err != nil {
		t.Fatalf("RenderFooter: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var doc struct {
		Title   string            `json:"title"`
		Entries []json.RawMessage `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Entries == nil {
		t.Error("entries must encode as an empty array, not null")
	}
}
