package render

import (
	"bufio"
	"fmt"
	"html"
	"io"

	"github.com/scmtools/gitlog/internal/git"
)

// HTMLRenderer writes a minimal standalone HTML changelog page. Commit
// lists are grouped into <ul> blocks between tag headings.
type HTMLRenderer struct {
	w      *bufio.Writer
	linker Linker
	inList bool
}

// NewHTMLRenderer returns an HTML renderer writing to w. A non-empty
// issueURL turns #123 references into anchors.
func NewHTMLRenderer(w io.Writer, issueURL string) *HTMLRenderer {
	return &HTMLRenderer{w: bufio.NewWriter(w), linker: NewLinker(issueURL)}
}

// RenderHeader implements Renderer.
func (r *HTMLRenderer) RenderHeader(title string) error {
	escaped := html.EscapeString(title)
	_, err := fmt.Fprintf(r.w, "<html>\n<head>\n<title>%s</title>\n</head>\n<body>\n<h1>%s</h1>\n", escaped, escaped)
	return err
}

// RenderTag implements Renderer.
func (r *HTMLRenderer) RenderTag(tag git.Tag) error {
	if err := r.closeList(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, "<h2>%s</h2>\n", html.EscapeString(tag.Name))
	return err
}

// RenderCommit implements Renderer.
func (r *HTMLRenderer) RenderCommit(c git.Commit) error {
	if !r.inList {
		if _, err := fmt.Fprintln(r.w, "<ul>"); err != nil {
			return err
		}
		r.inList = true
	}
	subject := r.linker.HTML(html.EscapeString(c.Subject()))
	_, err := fmt.Fprintf(r.w, "<li>%s <code>%s</code></li>\n", subject, c.ShortHash())
	return err
}

// RenderFooter implements Renderer.
func (r *HTMLRenderer) RenderFooter() error {
	if err := r.closeList(); err != nil {
		return err
	}
	_, err := fmt.Fprint(r.w, "</body>\n</html>\n")
	return err
}

func (r *HTMLRenderer) closeList() error {
	if !r.inList {
		return nil
	}
	r.inList = false
	_, err := fmt.Fprintln(r.w, "</ul>")
	return err
}

// Close implements Renderer, flushing buffered output.
func (r *HTMLRenderer) Close() error {
	return r.w.Flush()
}
