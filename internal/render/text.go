package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/scmtools/gitlog/internal/git"
)

// TextRenderer writes a plain-text changelog.
type TextRenderer struct {
	w *bufio.Writer
}

// NewTextRenderer returns a text renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: bufio.NewWriter(w)}
}

// RenderHeader implements Renderer.
func (r *TextRenderer) RenderHeader(title string) error {
	underline := strings.Repeat("=", utf8.RuneCountInString(title))
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", title, underline)
	return err
}

// RenderTag implements Renderer.
func (r *TextRenderer) RenderTag(tag git.Tag) error {
	_, err := fmt.Fprintf(r.w, "\n%s\n", tag.Name)
	return err
}

// RenderCommit implements Renderer.
func (r *TextRenderer) RenderCommit(c git.Commit) error {
	_, err := fmt.Fprintf(r.w, "%s %s (%s)\n", c.ShortHash(), c.Subject(), c.Author.Name)
	return err
}

// RenderFooter implements Renderer.
func (r *TextRenderer) RenderFooter() error {
	_, err := fmt.Fprintln(r.w)
	return err
}

// Close implements Renderer, flushing buffered output.
func (r *TextRenderer) Close() error {
	return r.w.Flush()
}
