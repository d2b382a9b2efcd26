package render

import "github.com/scmtools/gitlog/internal/git"

// MockRenderer records the lifecycle calls it receives so tests can assert
// on exact emission sequences without formatting concerns.
type MockRenderer struct {
	Calls []string

	// FailOn names a lifecycle stage ("header", "tag", "commit",
	// "footer", "close") that returns Err. The call is still recorded.
	FailOn string
	Err    error
}

// NewMockRenderer creates an empty mock renderer.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) record(stage, detail string) error {
	call := stage
	if detail != "" {
		call += ":" + detail
	}
	m.Calls = append(m.Calls, call)
	if m.FailOn == stage {
		return m.Err
	}
	return nil
}

// RenderHeader implements Renderer.
func (m *MockRenderer) RenderHeader(title string) error {
	return m.record("header", title)
}

// RenderTag implements Renderer.
func (m *MockRenderer) RenderTag(tag git.Tag) error {
	return m.record("tag", tag.Name)
}

// RenderCommit implements Renderer.
func (m *MockRenderer) RenderCommit(c git.Commit) error {
	return m.record("commit", c.Subject())
}

// RenderFooter implements Renderer.
func (m *MockRenderer) RenderFooter() error {
	return m.record("footer", "")
}

// Close implements Renderer.
func (m *MockRenderer) Close() error {
	return m.record("close", "")
}

// CloseCount returns how many times Close was called.
func (m *MockRenderer) CloseCount() int {
	n := 0
	for _, call := range m.Calls {
		if call == "close" {
			n++
		}
	}
	return n
}
