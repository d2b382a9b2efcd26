package filter

import "github.com/scmtools/gitlog/internal/git"

// DedupeFilter suppresses commits whose subject line was already seen
// during the current run. It implements Resetter, so a Chain clears it
// between runs.
type DedupeFilter struct {
	seen map[string]struct{}
}

// NewDedupeFilter returns an empty dedupe filter.
func NewDedupeFilter() *DedupeFilter {
	return &DedupeFilter{seen: make(map[string]struct{})}
}

// Accept implements Filter. The first commit with a given subject is
// accepted and recorded; later commits repeating it are rejected.
func (f *DedupeFilter) Accept(c git.Commit) bool {
	subject := c.Subject()
	if _, dup := f.seen[subject]; dup {
		return false
	}
	f.seen[subject] = struct{}{}
	return true
}

// Reset forgets previously seen subjects.
func (f *DedupeFilter) Reset() {
	f.seen = make(map[string]struct{})
}
