package errorvalues

import "errors"

var (
	// ErrInvalidResponse means the remote endpoint answered a mandatory query
	// with a non-success status.
	ErrInvalidResponse = errors.New("leetcode returned a non-success status")
	// ErrDecode means the response body didn't match the expected schema,
	// including a malformed embedded submission calendar.
	ErrDecode = errors.New("failed to decode leetcode response")
	// ErrParse means the embedded submission-calendar payload itself was
	// malformed. It is wrapped into ErrDecode at the client boundary.
	ErrParse = errors.New("malformed submission calendar payload")

	ErrInvalidUsername = errors.New("invalid leetcode username")
)
