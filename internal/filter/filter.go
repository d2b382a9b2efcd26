// Package filter decides which commits appear in rendered output. Filters
// combine with AND semantics: every registered filter must accept a commit
// for it to be rendered.
package filter

import "github.com/scmtools/gitlog/internal/git"

// Compile-time interface conformance checks.
var (
	_ Filter = MergeFilter{}
	_ Filter = (*MessageFilter)(nil)
	_ Filter = (*AuthorFilter)(nil)
	_ Filter = (*DedupeFilter)(nil)
)

// Filter is a predicate over a commit. Implementations must not rely on
// seeing every commit: the chain short-circuits on the first rejection.
type Filter interface {
	Accept(c git.Commit) bool
}

// Resetter is implemented by stateful filters that carry per-run state.
type Resetter interface {
	Reset()
}

// Chain evaluates filters in registration order.
type Chain []Filter

// Reset clears the per-run state of every stateful filter so the chain
// gives the same verdicts on a repeated run.
func (ch Chain) Reset() {
	for _, f := range ch {
		if r, ok := f.(Resetter); ok {
			r.Reset()
		}
	}
}

// Eval reports whether every filter accepts the commit. On rejection it
// also returns the rejecting filter for diagnostics; filters after it are
// not consulted.
func (ch Chain) Eval(c git.Commit) (bool, Filter) {
	for _, f := range ch {
		if !f.Accept(c) {
			return false, f
		}
	}
	return true, nil
}

// Accept reports whether every filter in the chain accepts the commit. An
// empty chain accepts everything.
func (ch Chain) Accept(c git.Commit) bool {
	ok, _ := ch.Eval(c)
	return ok
}
