package borehole

import "errors"

var (
	// ErrOutOfRange is returned when a depth lies outside the span covered by
	// the survey stations. It is an expected outcome, not a failure.
	ErrOutOfRange = errors.New("depth out of range")

	ErrDuplicateMD = errors.New("duplicate measured depth")
	ErrUnsorted    = errors.New("stations not sorted by measured depth")
	ErrInvalidMD   = errors.New("measured depth is not a number")
)
