package git

import "errors"

// ErrNoRepository reports that no git repository encloses the starting
// directory. Callers match it with errors.Is to tell "not a repository"
// apart from repositories that exist but cannot be read.
var ErrNoRepository = errors.New("no git repository found")
