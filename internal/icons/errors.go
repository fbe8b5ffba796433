package icons

import "errors"

var (
	ErrMissingField   = errors.New("required field missing")
	ErrInvalidName    = errors.New("invalid name format: use lowercase letters, numbers, hyphens and colons only")
	ErrInvalidContent = errors.New("content must be valid SVG")
	ErrNotFound       = errors.New("icon not found")
	ErrAlreadyExists  = errors.New("icon already exists")
)
