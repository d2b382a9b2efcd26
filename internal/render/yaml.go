package render

import (
	"fmt"
	"io"

	"github.com/scmtools/gitlog/internal/git"
	"gopkg.in/yaml.v3"
)

// YAMLRenderer mirrors the JSON renderer with YAML encoding.
type YAMLRenderer struct {
	w   io.Writer
	doc reportDoc
}

// NewYAMLRenderer returns a YAML renderer writing to w.
func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{w: w, doc: reportDoc{Entries: []reportEntry{}}}
}

// RenderHeader implements Renderer.
func (r *YAMLRenderer) RenderHeader(title string) error {
	r.doc.Title = title
	return nil
}

// RenderTag implements Renderer.
func (r *YAMLRenderer) RenderTag(tag git.Tag) error {
	r.doc.Entries = append(r.doc.Entries, tagEntry(tag))
	return nil
}

// RenderCommit implements Renderer.
func (r *YAMLRenderer) RenderCommit(c git.Commit) error {
	r.doc.Entries = append(r.doc.Entries, commitEntry(c))
	return nil
}

// RenderFooter implements Renderer, encoding the accumulated document.
func (r *YAMLRenderer) RenderFooter() error {
	encoder := yaml.NewEncoder(r.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r.doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

// Close implements Renderer. The document is written on footer, so there
// is nothing left to flush.
func (r *YAMLRenderer) Close() error {
	return nil
}
