package event

import (
	"errors"
)

var (
	// ErrNilDependency is returned if Init is called with a nil app, config or db.
	ErrNilDependency = errors.New("app, cfg or db is nil")
)
