package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scmtools/gitlog/internal/git"
)

// ConsoleRenderer writes a colored changelog for terminals. Color is
// dropped automatically when the destination is not a terminal.
type ConsoleRenderer struct {
	w     io.Writer
	title *color.Color
	tag   *color.Color
	hash  *color.Color
}

// NewConsoleRenderer returns a console renderer writing to w.
func NewConsoleRenderer(w io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{
		w:     w,
		title: color.New(color.FgGreen).Add(color.Underline),
		tag:   color.New(color.FgYellow).Add(color.Bold),
		hash:  color.New(color.FgCyan),
	}
}

// RenderHeader implements Renderer.
func (r *ConsoleRenderer) RenderHeader(title string) error {
	if _, err := r.title.Fprintln(r.w, title); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// RenderTag implements Renderer.
func (r *ConsoleRenderer) RenderTag(tag git.Tag) error {
	_, err := r.tag.Fprintf(r.w, "\n%s\n", tag.Name)
	return err
}

// RenderCommit implements Renderer.
func (r *ConsoleRenderer) RenderCommit(c git.Commit) error {
	if _, err := r.hash.Fprint(r.w, c.ShortHash()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(r.w, " %s (%s)\n", c.Subject(), c.Author.Name)
	return err
}

// RenderFooter implements Renderer.
func (r *ConsoleRenderer) RenderFooter() error {
	_, err := fmt.Fprintln(r.w)
	return err
}

// Close implements Renderer. Console output is unbuffered.
func (r *ConsoleRenderer) Close() error {
	return nil
}
