package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Open locates and opens the repository enclosing dir, searching upward
// through parent directories the way the git CLI does. An empty dir means
// the current working directory.
func Open(dir string) (*git.Repository, error) {
	if dir == "" {
		dir = "."
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w searching upward from %q", ErrNoRepository, dir)
		}
		return nil, fmt.Errorf("open repository at %q: %w", dir, err)
	}
	return repo, nil
}
