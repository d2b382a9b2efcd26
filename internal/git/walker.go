package git

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Walker produces walks over the history reachable from the repository
// head. The head is resolved once, when the walker is built; every call to
// Walk yields a fresh single-pass traversal from that point.
type Walker struct {
	repo  *git.Repository
	start plumbing.Hash // zero when the repository has no commits
}

// NewWalker resolves the repository head and validates it as a commit. A
// repository with no commits yields a walker whose walks visit nothing;
// that is not an error.
func NewWalker(repo *git.Repository) (*Walker, error) {
	ref, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return &Walker{repo: repo}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	if _, err := repo.CommitObject(ref.Hash()); err != nil {
		return nil, fmt.Errorf("parse head commit %s: %w", ref.Hash(), err)
	}
	return &Walker{repo: repo, start: ref.Hash()}, nil
}

// Walk starts a new traversal. The caller owns the returned walk and must
// close it when done.
func (w *Walker) Walk() (*Walk, error) {
	if w.start.IsZero() {
		return &Walk{}, nil
	}
	iter, err := w.repo.Log(&git.LogOptions{From: w.start})
	if err != nil {
		return nil, fmt.Errorf("walk commits from %s: %w", w.start, err)
	}
	return &Walk{iter: iter}, nil
}

// Walk is a single-pass traversal of the commits reachable from the walker's
// start point. Each reachable commit is visited exactly once, newest first
// on linear history.
type Walk struct {
	iter   object.CommitIter
	closed bool
}

// ForEach visits every remaining commit. Returning an error from fn stops
// the traversal and surfaces that error unchanged.
func (w *Walk) ForEach(fn func(Commit) error) error {
	if w.iter == nil {
		return nil
	}
	for {
		c, err := w.iter.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("walk commits: %w", err)
		}
		if err := fn(commitFromObject(c)); err != nil {
			return err
		}
	}
}

// Close releases the walk. Further calls are no-ops.
func (w *Walk) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.iter != nil {
		w.iter.Close()
	}
}
