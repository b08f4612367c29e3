package message

import "github.com/pkg/errors"

var (
	// ErrInvalidHeader is the cause of errors returned when a field
	// name or value breaks the legality rules, or when a set/add is
	// given zero values.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidBody is the cause of errors returned when WithBody is
	// given an unusable handle.
	ErrInvalidBody = errors.New("invalid body")
)
