package chartkit

import (
	"errors"
)

var (
	ErrColor = errors.New("invalid color")
	ErrKind  = errors.New("unsupported kind")
	ErrEmpty = errors.New("empty series")
)
