// Package render implements the changelog output protocol. A renderer is a
// stateful sink driven through a fixed lifecycle per generation run: header
// first, then tag and commit events in emission order, then footer, then
// exactly one Close.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/scmtools/gitlog/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ Renderer = (*ConsoleRenderer)(nil)
	_ Renderer = (*TextRenderer)(nil)
	_ Renderer = (*MarkdownRenderer)(nil)
	_ Renderer = (*HTMLRenderer)(nil)
	_ Renderer = (*JSONRenderer)(nil)
	_ Renderer = (*YAMLRenderer)(nil)
	_ Renderer = (*MockRenderer)(nil)
)

// Renderer receives the changelog generation lifecycle. Any call may fail;
// a failing renderer aborts the run, but Close is still delivered to every
// renderer of the run.
type Renderer interface {
	RenderHeader(title string) error
	RenderTag(tag git.Tag) error
	RenderCommit(commit git.Commit) error
	RenderFooter() error
	Close() error
}

// Format identifies an output format.
type Format string

const (
	FormatConsole  Format = "console"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat maps a format name from configuration or the command line to
// a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "console", "":
		return FormatConsole, nil
	case "text", "txt", "plaintext":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// DefaultFilename returns the conventional changelog filename for a
// format, or empty for formats that write to the terminal.
func (f Format) DefaultFilename() string {
	switch f {
	case FormatText:
		return "changelog.txt"
	case FormatMarkdown:
		return "changelog.md"
	case FormatHTML:
		return "changelog.html"
	case FormatJSON:
		return "changelog.json"
	case FormatYAML:
		return "changelog.yaml"
	default:
		return ""
	}
}

// Options carries construction settings shared by the factory.
type Options struct {
	// IssueURL is a URL prefix for linking issue references like #123 in
	// formats that support links. Empty disables linking.
	IssueURL string
}

// New builds a renderer for the format writing to w. The caller keeps
// ownership of w: Close flushes buffered output but does not close it.
func New(format Format, w io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatConsole:
		return NewConsoleRenderer(w), nil
	case FormatText:
		return NewTextRenderer(w), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(w, opts.IssueURL), nil
	case FormatHTML:
		return NewHTMLRenderer(w, opts.IssueURL), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	case FormatYAML:
		return NewYAMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Open builds a file-backed renderer at path. The returned renderer owns
// the file: Close flushes and closes it.
func Open(format Format, path string, opts Options) (Renderer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	r, err := New(format, file, opts)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &fileRenderer{Renderer: r, file: file}, nil
}

// fileRenderer pairs a renderer with the file it writes to.
type fileRenderer struct {
	Renderer
	file *os.File
}

func (r *fileRenderer) Close() error {
	err := r.Renderer.Close()
	if cerr := r.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
