package recording

import "errors"

var (
	// ErrMalformed reports input that is not a rectangular numeric table.
	ErrMalformed = errors.New("malformed recording")
	// ErrEmpty reports a recording without samples or channels.
	ErrEmpty = errors.New("empty recording")
	// ErrLabelCount reports a label list that does not match the channel count.
	ErrLabelCount = errors.New("label count does not match channel count")
	// ErrUnsupported reports a recording that cannot be written in the requested format.
	ErrUnsupported = errors.New("unsupported recording layout")
)
