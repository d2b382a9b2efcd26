package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/scmtools/gitlog/internal/git"
)

// MarkdownRenderer writes a markdown changelog, optionally linking issue
// references in commit subjects.
type MarkdownRenderer struct {
	w      *bufio.Writer
	linker Linker
}

// NewMarkdownRenderer returns a markdown renderer writing to w. A non-empty
// issueURL turns #123 references into links.
func NewMarkdownRenderer(w io.Writer, issueURL string) *MarkdownRenderer {
	return &MarkdownRenderer{w: bufio.NewWriter(w), linker: NewLinker(issueURL)}
}

// RenderHeader implements Renderer.
func (r *MarkdownRenderer) RenderHeader(title string) error {
	_, err := fmt.Fprintf(r.w, "# %s\n", escapeMarkdown(title))
	return err
}

// RenderTag implements Renderer.
func (r *MarkdownRenderer) RenderTag(tag git.Tag) error {
	_, err := fmt.Fprintf(r.w, "\n## %s\n\n", escapeMarkdown(tag.Name))
	return err
}

// RenderCommit implements Renderer.
func (r *MarkdownRenderer) RenderCommit(c git.Commit) error {
	subject := r.linker.Markdown(escapeMarkdown(c.Subject()))
	_, err := fmt.Fprintf(r.w, "* %s (`%s`)\n", subject, c.ShortHash())
	return err
}

// RenderFooter implements Renderer.
func (r *MarkdownRenderer) RenderFooter() error {
	_, err := fmt.Fprintln(r.w)
	return err
}

// Close implements Renderer, flushing buffered output.
func (r *MarkdownRenderer) Close() error {
	return r.w.Flush()
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
