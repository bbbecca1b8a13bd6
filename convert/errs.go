package convert

import "errors"

var (
	// ErrNotFound reports a missing or unreadable input file.
	ErrNotFound = errors.New("input not found")
	// ErrWrite reports a failure writing an output file.
	ErrWrite = errors.New("write error")
)
