package temperrors

import "errors"

var (
	ErrEmptyList = errors.New("empty list")
	ErrBadStatus = errors.New("bad response status")
)
