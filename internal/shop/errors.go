package shop

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")

	ErrMissingField  = fmt.Errorf("%w: missing field", ErrBadRequest)
	ErrWeakPassword  = fmt.Errorf("%w: weak or mismatched password", ErrBadRequest)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrBadRequest)
)

var ErrInvalidCredentials = errors.New("invalid credentials")
