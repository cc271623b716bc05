package view

import (
	"fmt"
	"math"
)

const (
	// DefaultMinWindow is the narrowest window in seconds.
	DefaultMinWindow = 1.0
	// DefaultMaxWindow is the widest window in seconds for long recordings.
	DefaultMaxWindow = 300.0
	// DefaultWindow is the window shown when a recording is opened.
	DefaultWindow = 10.0
)

// Presets are the quick-select window sizes in seconds.
var Presets = []float64{5, 10, 30, 60}

// Bounds are the fixed limits a State navigates within.
type Bounds struct {
	Channels  int     `json:"channels" yaml:"channels"`
	Duration  float64 `json:"duration" yaml:"duration"`
	MinWindow float64 `json:"min_window" yaml:"min_window"`
	MaxWindow float64 `json:"max_window" yaml:"max_window"`
}

// NewBounds derives the navigation limits of a recording with the given
// channel count and duration in seconds. The maximum window is 300 s or the
// duration if shorter; the minimum window is 1 s, lowered to the maximum for
// recordings shorter than a second.
func NewBounds(channels int, duration float64) (Bounds, error) {
	if channels < 1 {
		return Bounds{}, fmt.Errorf("%w: channels must be >= 1: %d", ErrInvalidBounds, channels)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return Bounds{}, fmt.Errorf("%w: duration must be > 0: %g", ErrInvalidBounds, duration)
	}
	maxWindow := math.Min(DefaultMaxWindow, duration)
	return Bounds{
		Channels:  channels,
		Duration:  duration,
		MinWindow: math.Min(DefaultMinWindow, maxWindow),
		MaxWindow: maxWindow,
	}, nil
}

// Validate checks the bounds for internal consistency.
func (b Bounds) Validate() error {
	switch {
	case b.Channels < 1:
		return fmt.Errorf("%w: channels must be >= 1: %d", ErrInvalidBounds, b.Channels)
	case !(b.Duration > 0):
		return fmt.Errorf("%w: duration must be > 0: %g", ErrInvalidBounds, b.Duration)
	case !(b.MinWindow > 0) || b.MinWindow > b.MaxWindow:
		return fmt.Errorf("%w: window range [%g, %g]", ErrInvalidBounds, b.MinWindow, b.MaxWindow)
	case b.MaxWindow > b.Duration:
		return fmt.Errorf("%w: max window %g exceeds duration %g", ErrInvalidBounds, b.MaxWindow, b.Duration)
	}
	return nil
}
