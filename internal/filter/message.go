package filter

import (
	"fmt"
	"regexp"

	"github.com/scmtools/gitlog/internal/git"
)

// MessageFilter matches commit messages against a regular expression. In
// include mode only matching commits are accepted; in exclude mode matching
// commits are rejected, which is useful for dropping release-automation
// noise.
type MessageFilter struct {
	re      *regexp.Regexp
	exclude bool
}

// NewMessageFilter compiles pattern and returns the filter. Patterns are
// matched against the full commit message.
func NewMessageFilter(pattern string, exclude bool) (*MessageFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("message pattern %q: %w", pattern, err)
	}
	return &MessageFilter{re: re, exclude: exclude}, nil
}

// Accept implements Filter.
func (f *MessageFilter) Accept(c git.Commit) bool {
	matched := f.re.MatchString(c.Message)
	if f.exclude {
		return !matched
	}
	return matched
}
