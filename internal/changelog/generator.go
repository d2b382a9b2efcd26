// Package changelog drives changelog generation. A Generator owns the
// repository walk and the tag index prepared at open time and streams
// header, tag, commit and footer events through an ordered list of
// renderers.
package changelog

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/scmtools/gitlog/internal/filter"
	"github.com/scmtools/gitlog/internal/git"
	"github.com/scmtools/gitlog/internal/render"
)

// ErrNotOpened reports that Generate was called before Open.
var ErrNotOpened = errors.New("repository not opened")

// historySource produces the commit traversals consumed by Generate. This
// abstraction allows for easier testing and potential alternative history
// backends.
type historySource interface {
	Walk() (commitWalk, error)
}

// commitWalk is a single-pass traversal of commit history.
type commitWalk interface {
	ForEach(fn func(git.Commit) error) error
	Close()
}

// tagLookup is the read surface of the tag index.
type tagLookup interface {
	Lookup(commitID string) []git.Tag
	Len() int
}

// Options configures a Generator.
type Options struct {
	// Renderers receive the generation lifecycle in list order.
	Renderers []render.Renderer
	// Filters decide commit inclusion; an empty chain includes every
	// commit.
	Filters []filter.Filter
	// SkipTags disables tag association entirely: tag refs are never
	// enumerated and no tag is rendered.
	SkipTags bool
	// TagPattern restricts indexed tags by short name (doublestar glob).
	TagPattern string
	// Logger receives diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// Generator orchestrates changelog generation against an opened
// repository. Open must succeed before Generate is called; after that,
// Generate may run any number of times, each run walking the history
// afresh.
type Generator struct {
	renderers  []render.Renderer
	filters    filter.Chain
	skipTags   bool
	tagPattern string
	log        *zap.Logger

	source historySource
	tags   tagLookup
}

// New builds a Generator from options.
func New(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		renderers:  opts.Renderers,
		filters:    filter.Chain(opts.Filters),
		skipTags:   opts.SkipTags,
		tagPattern: opts.TagPattern,
		log:        log,
	}
}

// walkerSource adapts git.Walker to the historySource seam.
type walkerSource struct {
	walker *git.Walker
}

func (s walkerSource) Walk() (commitWalk, error) {
	return s.walker.Walk()
}

// Open locates the repository enclosing dir (the working directory when
// dir is empty) and prepares everything generation needs: the head is
// resolved into a walker and the tag index is built. A directory with no
// enclosing repository fails with git.ErrNoRepository; a repository with
// no commits opens fine and produces an empty changelog.
func (g *Generator) Open(dir string) error {
	g.log.Debug("opening repository", zap.String("dir", dir))
	repo, err := git.Open(dir)
	if err != nil {
		return err
	}

	walker, err := git.NewWalker(repo)
	if err != nil {
		return err
	}

	tags := tagLookup(git.NewTagIndex())
	if !g.skipTags {
		index, err := git.BuildTagIndex(repo, git.TagIndexOptions{Pattern: g.tagPattern}, g.log)
		if err != nil {
			return err
		}
		tags = index
	}
	g.log.Debug("repository ready", zap.Int("tags", tags.Len()))

	g.source = walkerSource{walker: walker}
	g.tags = tags
	return nil
}

// GenerateAll renders every commit reachable from head, with no cutoff.
func (g *Generator) GenerateAll(title string) error {
	return g.Generate(title, time.Unix(0, 0))
}

// Generate streams one changelog through every renderer: header first,
// then per commit in walk order its tags (regardless of filtering) and the
// commit itself (only when the filter chain accepts it), then footer.
// Commits must be strictly newer than after to be considered; a commit
// exactly at the cutoff is excluded. Every renderer is closed exactly once
// per run, on success and on every failure path alike.
func (g *Generator) Generate(title string, after time.Time) (err error) {
	if g.source == nil {
		return ErrNotOpened
	}
	g.filters.Reset()

	// pending tracks renderers still owed a Close. The deferred sweep
	// covers early returns; the footer loop below pops renderers as it
	// closes them so the success path closes each exactly once.
	pending := g.renderers
	defer func() {
		for _, r := range pending {
			if cerr := r.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	for _, r := range g.renderers {
		if err = r.RenderHeader(title); err != nil {
			return err
		}
	}

	cutoff := after.Unix()

	walk, err := g.source.Walk()
	if err != nil {
		return err
	}
	defer walk.Close()

	err = walk.ForEach(func(c git.Commit) error {
		if c.When().Unix() <= cutoff {
			return nil
		}

		if tags := g.tags.Lookup(c.Hash); len(tags) > 0 {
			for _, r := range g.renderers {
				for _, tag := range tags {
					if err := r.RenderTag(tag); err != nil {
						return err
					}
				}
			}
		}

		ok, rejectedBy := g.filters.Eval(c)
		if !ok {
			g.log.Debug("commit filtered out",
				zap.String("commit", c.ShortHash()),
				zap.String("filter", fmt.Sprintf("%T", rejectedBy)))
			return nil
		}

		for _, r := range g.renderers {
			if err := r.RenderCommit(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for len(pending) > 0 {
		r := pending[0]
		if err = r.RenderFooter(); err != nil {
			return err
		}
		pending = pending[1:]
		if err = r.Close(); err != nil {
			return err
		}
	}
	return nil
}
