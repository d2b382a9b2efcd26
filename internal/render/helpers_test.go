package render

import (
	"strings"
	"testing"
	"time"

	"github.com/scmtools/gitlog/internal/git"
)

func sampleCommitFeature() git.Commit {
	return git.Commit{
		Hash:    strings.Repeat("a", 40),
		Parents: []string{strings.Repeat("b", 40)},
		Author:  git.Signature{Name: "Alice", Email: "alice@example.com", When: time.Unix(300, 0).UTC()},
		Committer: git.Signature{
			Name: "Alice", Email: "alice@example.com", When: time.Unix(300, 0).UTC(),
		},
		Message: "add feature #42\n\nlonger body\n",
	}
}

func sampleCommitFix() git.Commit {
	return git.Commit{
		Hash:    strings.Repeat("b", 40),
		Author:  git.Signature{Name: "Bob", Email: "bob@example.com", When: time.Unix(200, 0).UTC()},
		Committer: git.Signature{
			Name: "Bob", Email: "bob@example.com", When: time.Unix(200, 0).UTC(),
		},
		Message: "fix bug\n",
	}
}

func sampleTag() git.Tag {
	return git.Tag{
		Name:    "v1.0.0",
		Ref:     "refs/tags/v1.0.0",
		Target:  strings.Repeat("b", 40),
		Tagger:  git.Signature{Name: "Releaser", Email: "rel@example.com", When: time.Unix(250, 0).UTC()},
		Message: "release v1.0.0\n",
	}
}

// renderSample drives the standard lifecycle: header, newest commit, the
// tag on the older commit, the older commit, footer, close.
func renderSample(t *testing.T, r Renderer) {
	t.Helper()
	if err := r.RenderHeader("Changelog"); err != nil {
		t.Fatalf("RenderHeader: %v", err)
	}
	if err := r.RenderCommit(sampleCommitFeature()); err != nil {
		t.Fatalf("RenderCommit: %v", err)
	}
	if err := r.RenderTag(sampleTag()); err != nil {
		t.Fatalf("RenderTag: %v", err)
	}
	if err := r.RenderCommit(sampleCommitFix()); err != nil {
		t.Fatalf("RenderCommit: %v", err)
	}
	if err := r.RenderFooter(); err != nil {
		t.Fatalf("RenderFooter: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
