package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/scmtools/gitlog/internal/git"
)

// JSONRenderer accumulates the emission sequence and writes one JSON
// document on footer. The document preserves emission order: tags and
// commits appear as entries in the order they were rendered.
type JSONRenderer struct {
	w   io.Writer
	doc reportDoc
}

// reportDoc is the machine-readable changelog shared by the JSON and YAML
// renderers.
type reportDoc struct {
	Title   string        `json:"title" yaml:"title"`
	Entries []reportEntry `json:"entries" yaml:"entries"`
}

type reportEntry struct {
	Kind    string `json:"kind" yaml:"kind"` // "tag" or "commit"
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Hash    string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	When    string `json:"when,omitempty" yaml:"when,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func tagEntry(tag git.Tag) reportEntry {
	return reportEntry{
		Kind:   "tag",
		Name:   tag.Name,
		Hash:   tag.Target,
		Author: tag.Tagger.Name,
		When:   tag.Tagger.When.Format(time.RFC3339),
	}
}

func commitEntry(c git.Commit) reportEntry {
	return reportEntry{
		Kind:    "commit",
		Hash:    c.Hash,
		Author:  c.Author.Name,
		Email:   c.Author.Email,
		When:    c.When().Format(time.RFC3339),
		Message: c.Subject(),
	}
}

// NewJSONRenderer returns a JSON renderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{w: w, doc: reportDoc{Entries: []reportEntry{}}}
}

// RenderHeader implements Renderer.
func (r *JSONRenderer) RenderHeader(title string) error {
	r.doc.Title = title
	return nil
}

// RenderTag implements Renderer.
func (r *JSONRenderer) RenderTag(tag git.Tag) error {
	r.doc.Entries = append(r.doc.Entries, tagEntry(tag))
	return nil
}

// RenderCommit implements Renderer.
func (r *JSONRenderer) RenderCommit(c git.Commit) error {
	r.doc.Entries = append(r.doc.Entries, commitEntry(c))
	return nil
}

// RenderFooter implements Renderer, encoding the accumulated document.
func (r *JSONRenderer) RenderFooter() error {
	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Close implements Renderer. The document is written on footer, so there
// is nothing left to flush.
func (r *JSONRenderer) Close() error {
	return nil
}
