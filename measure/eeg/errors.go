package eeg

import "errors"

// ErrNoValidChannels reports a run in which every channel was invalid.
var ErrNoValidChannels = errors.New("no valid channels")
