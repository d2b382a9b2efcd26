package git

import (
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit is the view of a repository commit consumed by filters and
// renderers. Beyond the hash and the committer timestamp the fields are
// opaque to the generation core; renderers pick what they need.
type Commit struct {
	Hash      string
	Parents   []string
	Author    Signature
	Committer Signature
	Message   string
}

// Signature identifies who authored a commit or tag and when.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// When returns the committer timestamp, the time used for cutoff
// comparisons.
func (c Commit) When() time.Time {
	return c.Committer.When
}

// ShortHash returns the abbreviated commit identifier.
func (c Commit) ShortHash() string {
	if len(c.Hash) <= 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	msg := c.Message
	if idx := strings.IndexByte(msg, '\n'); idx != -1 {
		msg = msg[:idx]
	}
	return strings.TrimRight(msg, "\r")
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool {
	return len(c.Parents) > 1
}

// Tag is an annotated tag. Lightweight tags carry no tag object and are
// never represented as Tag values.
type Tag struct {
	Name    string // short name, e.g. "v1.2.3"
	Ref     string // full ref name, e.g. "refs/tags/v1.2.3"
	Target  string // id of the object the tag points at, normally a commit
	Tagger  Signature
	Message string
}

func commitFromObject(c *object.Commit) Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return Commit{
		Hash:      c.Hash.String(),
		Parents:   parents,
		Author:    Signature{Name: c.Author.Name, Email: c.Author.Email, When: c.Author.When},
		Committer: Signature{Name: c.Committer.Name, Email: c.Committer.Email, When: c.Committer.When},
		Message:   c.Message,
	}
}

func tagFromObject(ref *plumbing.Reference, t *object.Tag) Tag {
	return Tag{
		Name:    t.Name,
		Ref:     ref.Name().String(),
		Target:  t.Target.String(),
		Tagger:  Signature{Name: t.Tagger.Name, Email: t.Tagger.Email, When: t.Tagger.When},
		Message: t.Message,
	}
}
