package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/scmtools/gitlog/internal/git"
)

// AuthorFilter accepts commits whose author name or email matches at least
// one of the configured doublestar globs.
type AuthorFilter struct {
	patterns []string
}

// NewAuthorFilter validates the patterns and returns the filter. A filter
// with no patterns accepts every commit.
func NewAuthorFilter(patterns []string) (*AuthorFilter, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("author pattern %q: %w", p, doublestar.ErrBadPattern)
		}
	}
	return &AuthorFilter{patterns: patterns}, nil
}

// Accept implements Filter.
func (f *AuthorFilter) Accept(c git.Commit) bool {
	if len(f.patterns) == 0 {
		return true
	}
	for _, p := range f.patterns {
		if matched, _ := doublestar.Match(p, c.Author.Name); matched {
			return true
		}
		if matched, _ := doublestar.Match(p, c.Author.Email); matched {
			return true
		}
	}
	return false
}
