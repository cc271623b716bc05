package view

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eeg/dsp/core"
)

// Direction selects the scroll direction.
type Direction int

const (
	// Left moves the window towards the start of the recording.
	Left Direction = -1
	// Right moves the window towards the end of the recording.
	Right Direction = 1
)

// scrollFraction is the share of the window moved by one scroll step.
const scrollFraction = 0.5

// State is the visible window: which channel, how many seconds, starting where.
type State struct {
	Channel    int     `json:"channel" yaml:"channel"`
	WindowSize float64 `json:"window_size" yaml:"window_size"`
	Start      float64 `json:"start" yaml:"start"`
}

// NewState returns the initial view: channel 0, a 10 s window clamped into
// b, starting at 0.
func NewState(b Bounds) State {
	return State{
		Channel:    0,
		WindowSize: core.Clamp(DefaultWindow, b.MinWindow, b.MaxWindow),
		Start:      0,
	}
}

// End returns Start + WindowSize.
func (s State) End() float64 {
	return s.Start + s.WindowSize
}

// SelectChannel switches to channel idx. Out-of-range indices fail with
// ErrChannelOutOfRange and leave the state unchanged.
func (s State) SelectChannel(b Bounds, idx int) (State, error) {
	if idx < 0 || idx >= b.Channels {
		return s, fmt.Errorf("%w: %d not in [0, %d)", ErrChannelOutOfRange, idx, b.Channels)
	}
	next := s.fit(b)
	next.Channel = idx
	return next, nil
}

// Scroll moves the window by half its size in dir, clamped to the
// recording. moved is false when the resulting state equals s.
func (s State) Scroll(b Bounds, dir Direction) (next State, moved bool) {
	next = s.fit(b)
	step := scrollFraction * next.WindowSize
	if dir < 0 {
		step = -step
	}
	next.Start = clampStart(next.Start+step, next.WindowSize, b.Duration)
	return next, next != s
}

// ScrollLeft is Scroll(b, Left).
func (s State) ScrollLeft(b Bounds) (State, bool) {
	return s.Scroll(b, Left)
}

// ScrollRight is Scroll(b, Right).
func (s State) ScrollRight(b Bounds) (State, bool) {
	return s.Scroll(b, Right)
}

// ZoomIn halves the window, not below b.MinWindow.
func (s State) ZoomIn(b Bounds) (State, bool) {
	return s.resize(b, s.WindowSize/2)
}

// ZoomOut doubles the window, not above b.MaxWindow.
func (s State) ZoomOut(b Bounds) (State, bool) {
	return s.resize(b, s.WindowSize*2)
}

// SetWindow jumps to a window of the given size in seconds, clamped into b.
// Non-positive sizes keep the current size.
func (s State) SetWindow(b Bounds, seconds float64) (State, bool) {
	if !(seconds > 0) {
		next := s.fit(b)
		return next, next != s
	}
	return s.resize(b, seconds)
}

func (s State) resize(b Bounds, size float64) (State, bool) {
	next := s
	next.WindowSize = size
	next = next.fit(b)
	return next, next != s
}

// fit clamps the window into [b.MinWindow, b.MaxWindow] and then the start
// into [0, duration - window]. A state built for other bounds comes out
// valid for b apart from its channel.
func (s State) fit(b Bounds) State {
	size := s.WindowSize
	if math.IsNaN(size) {
		size = DefaultWindow
	}
	s.WindowSize = core.Clamp(size, b.MinWindow, b.MaxWindow)
	start := s.Start
	if math.IsNaN(start) {
		start = 0
	}
	s.Start = clampStart(start, s.WindowSize, b.Duration)
	return s
}

// Validate checks the state against b.
func (s State) Validate(b Bounds) error {
	switch {
	case s.Channel < 0 || s.Channel >= b.Channels:
		return fmt.Errorf("%w: %d not in [0, %d)", ErrChannelOutOfRange, s.Channel, b.Channels)
	case s.WindowSize < b.MinWindow || s.WindowSize > b.MaxWindow:
		return fmt.Errorf("%w: window %g outside [%g, %g]", ErrInvalidState, s.WindowSize, b.MinWindow, b.MaxWindow)
	case s.Start < 0:
		return fmt.Errorf("%w: start %g < 0", ErrInvalidState, s.Start)
	case s.End() > b.Duration:
		return fmt.Errorf("%w: end %g > duration %g", ErrInvalidState, s.End(), b.Duration)
	}
	return nil
}

// SampleRange returns the half-open sample index range [lo, hi) of the
// visible window for a channel of n samples at sampleRate Hz.
func (s State) SampleRange(sampleRate float64, n int) (lo, hi int) {
	if !(sampleRate > 0) || n <= 0 {
		return 0, 0
	}
	lo = secondsToIndex(s.Start, sampleRate)
	hi = secondsToIndex(s.End(), sampleRate)
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)
	return lo, hi
}

// secondsToIndex floors t*fs, tolerating products like 0.3*5000 that land
// just below an integer.
func secondsToIndex(t, fs float64) int {
	return int(math.Floor(t*fs + 1e-9))
}

func clampStart(start, window, duration float64) float64 {
	return core.Clamp(start, 0, math.Max(0, duration-window))
}
