package changelog

import (
	"time"

	"github.com/scmtools/gitlog/internal/git"
)

// testCommit builds a commit whose hash is derived from the subject, with
// the committer timestamp at secs past the epoch.
func testCommit(subject string, secs int64) git.Commit {
	when := time.Unix(secs, 0).UTC()
	return git.Commit{
		Hash:      "sha-" + subject,
		Parents:   []string{"parent"},
		Author:    git.Signature{Name: "Test", Email: "test@example.com", When: when},
		Committer: git.Signature{Name: "Test", Email: "test@example.com", When: when},
		Message:   subject + "\n",
	}
}

func testTag(name, target string) git.Tag {
	return git.Tag{
		Name:    name,
		Ref:     "refs/tags/" + name,
		Target:  target,
		Tagger:  git.Signature{Name: "Test", Email: "test@example.com", When: time.Unix(0, 0).UTC()},
		Message: "release " + name + "\n",
	}
}

// fakeWalk is a scripted single-pass traversal.
type fakeWalk struct {
	commits []git.Commit
	closed  int

	// failAt, when non-negative, makes ForEach fail with failErr before
	// visiting the commit at that index.
	failAt  int
	failErr error
}

func (w *fakeWalk) ForEach(fn func(git.Commit) error) error {
	for i, c := range w.commits {
		if w.failAt >= 0 && i == w.failAt {
			return w.failErr
		}
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *fakeWalk) Close() {
	w.closed++
}

// fakeSource hands out fakeWalks over a fixed commit sequence, recording
// every walk it produced.
type fakeSource struct {
	commits []git.Commit
	walkErr error
	failAt  int
	failErr error
	walks   []*fakeWalk
}

func newFakeSource(commits ...git.Commit) *fakeSource {
	return &fakeSource{commits: commits, failAt: -1}
}

func (s *fakeSource) Walk() (commitWalk, error) {
	if s.walkErr != nil {
		return nil, s.walkErr
	}
	w := &fakeWalk{commits: s.commits, failAt: s.failAt, failErr: s.failErr}
	s.walks = append(s.walks, w)
	return w, nil
}

// fakeTags is a tagLookup backed by a plain map.
type fakeTags map[string][]git.Tag

func (f fakeTags) Lookup(commitID string) []git.Tag {
	return f[commitID]
}

func (f fakeTags) Len() int {
	n := 0
	for _, tags := range f {
		n += len(tags)
	}
	return n
}

// seqRenderer appends its lifecycle events to a shared log so tests can
// assert on ordering across renderers.
type seqRenderer struct {
	id     string
	log    *[]string
	failOn string
	err    error
	closes int
}

func (r *seqRenderer) record(stage, detail string) error {
	ev := r.id + ":" + stage
	if detail != "" {
		ev += ":" + detail
	}
	*r.log = append(*r.log, ev)
	if r.failOn == stage {
		return r.err
	}
	return nil
}

func (r *seqRenderer) RenderHeader(title string) error { return r.record("header", title) }
func (r *seqRenderer) RenderTag(tag git.Tag) error     { return r.record("tag", tag.Name) }
func (r *seqRenderer) RenderCommit(c git.Commit) error { return r.record("commit", c.Subject()) }
func (r *seqRenderer) RenderFooter() error             { return r.record("footer", "") }

func (r *seqRenderer) Close() error {
	r.closes++
	return r.record("close", "")
}
