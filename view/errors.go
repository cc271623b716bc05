package view

import "errors"

var (
	// ErrChannelOutOfRange reports a channel index outside [0, channels).
	ErrChannelOutOfRange = errors.New("channel out of range")
	// ErrInvalidBounds reports a recording shape that cannot be navigated.
	ErrInvalidBounds = errors.New("invalid view bounds")
	// ErrInvalidState reports a State that violates its Bounds.
	ErrInvalidState = errors.New("invalid view state")
	// ErrUnknownCommand reports an unparsable navigation command.
	ErrUnknownCommand = errors.New("unknown navigation command")
)
