package repo

import "errors"

// ErrNotFound is returned by by-id operations when no row matches.
var ErrNotFound = errors.New("not found")
