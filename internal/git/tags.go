package git

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.uber.org/zap"
)

// TagIndexOptions configures tag index construction.
type TagIndexOptions struct {
	// Pattern restricts indexed tags to those whose short name matches
	// a doublestar glob. Empty matches every tag.
	Pattern string
}

// TagIndex maps commit identifiers to the annotated tags pointing at them.
// It is built once per generator and read-only afterwards.
type TagIndex struct {
	byTarget map[string][]Tag
	size     int
}

// NewTagIndex returns an empty index, used when tag association is
// disabled.
func NewTagIndex() *TagIndex {
	return &TagIndex{byTarget: make(map[string][]Tag)}
}

// BuildTagIndex enumerates the repository's tag refs and indexes every
// annotated tag under the object it points at, preserving ref enumeration
// order. Lightweight tags carry no tag object; they are skipped with a
// debug diagnostic. Any other failure aborts construction.
func BuildTagIndex(repo *git.Repository, opts TagIndexOptions, log *zap.Logger) (*TagIndex, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Pattern != "" && !doublestar.ValidatePattern(opts.Pattern) {
		return nil, fmt.Errorf("tag pattern %q: %w", opts.Pattern, doublestar.ErrBadPattern)
	}

	refs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tag refs: %w", err)
	}
	defer refs.Close()

	index := NewTagIndex()
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if opts.Pattern != "" {
			matched, _ := doublestar.Match(opts.Pattern, ref.Name().Short())
			if !matched {
				return nil
			}
		}

		obj, err := repo.TagObject(ref.Hash())
		if errors.Is(err, plumbing.ErrObjectNotFound) {
			// A bare ref with no tag object behind it.
			log.Debug("skipping lightweight tag", zap.String("ref", ref.Name().String()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("parse tag %s: %w", ref.Name(), err)
		}

		index.add(tagFromObject(ref, obj))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

func (ix *TagIndex) add(t Tag) {
	ix.byTarget[t.Target] = append(ix.byTarget[t.Target], t)
	ix.size++
}

// Lookup returns the tags recorded for a commit in insertion order, or nil
// when the commit is untagged.
func (ix *TagIndex) Lookup(commitID string) []Tag {
	return ix.byTarget[commitID]
}

// Len returns the number of indexed tags.
func (ix *TagIndex) Len() int {
	return ix.size
}
