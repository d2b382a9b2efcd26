package filter

import "github.com/scmtools/gitlog/internal/git"

// MergeFilter rejects merge commits.
type MergeFilter struct{}

// NewMergeFilter returns a filter that rejects commits with more than one
// parent.
func NewMergeFilter() MergeFilter {
	return MergeFilter{}
}

// Accept implements Filter.
func (MergeFilter) Accept(c git.Commit) bool {
	return !c.IsMerge()
}
