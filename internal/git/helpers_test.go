package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// repoFixture wraps a throwaway repository with helpers for building
// history in tests.
type repoFixture struct {
	t    *testing.T
	dir  string
	repo *gogit.Repository
	wt   *gogit.Worktree
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	return &repoFixture{t: t, dir: dir, repo: repo, wt: wt}
}

func (f *repoFixture) write(rel, content string) {
	f.t.Helper()
	full := filepath.Join(f.dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		f.t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		f.t.Fatalf("WriteFile: %v", err)
	}
	if _, err := f.wt.Add(rel); err != nil {
		f.t.Fatalf("Add: %v", err)
	}
}

func (f *repoFixture) signature(when time.Time) *object.Signature {
	return &object.Signature{
		Name:  "Test",
		Email: "test@example.com",
		When:  when,
	}
}

func (f *repoFixture) commit(msg string, when time.Time) plumbing.Hash {
	f.t.Helper()
	hash, err := f.wt.Commit(msg, &gogit.CommitOptions{
		Author:    f.signature(when),
		Committer: f.signature(when),
	})
	if err != nil {
		f.t.Fatalf("Commit(%q): %v", msg, err)
	}
	return hash
}

// commitAt writes a file derived from the message and commits it at the
// given timestamp.
func (f *repoFixture) commitAt(msg string, when time.Time) plumbing.Hash {
	f.t.Helper()
	f.write("file.txt", msg+"\n")
	return f.commit(msg, when)
}

func (f *repoFixture) tag(name string, target plumbing.Hash, when time.Time) {
	f.t.Helper()
	_, err := f.repo.CreateTag(name, target, &gogit.CreateTagOptions{
		Tagger:  f.signature(when),
		Message: "release " + name,
	})
	if err != nil {
		f.t.Fatalf("CreateTag(%q): %v", name, err)
	}
}

func (f *repoFixture) lightweightTag(name string, target plumbing.Hash) {
	f.t.Helper()
	if _, err := f.repo.CreateTag(name, target, nil); err != nil {
		f.t.Fatalf("CreateTag(%q, lightweight): %v", name, err)
	}
}

func (f *repoFixture) checkoutNew(branch string) {
	f.t.Helper()
	err := f.wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	if err != nil {
		f.t.Fatalf("Checkout(%q): %v", branch, err)
	}
}

func (f *repoFixture) checkout(branch plumbing.ReferenceName) {
	f.t.Helper()
	if err := f.wt.Checkout(&gogit.CheckoutOptions{Branch: branch}); err != nil {
		f.t.Fatalf("Checkout(%s): %v", branch, err)
	}
}

func (f *repoFixture) head() *plumbing.Reference {
	f.t.Helper()
	ref, err := f.repo.Head()
	if err != nil {
		f.t.Fatalf("Head: %v", err)
	}
	return ref
}
