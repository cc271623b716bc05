// Package view implements the time-window navigation used to browse long
// multi-channel recordings.
//
// A State is a plain value (channel, window size, window start). Every
// transition is a pure function of the current State and the recording's
// Bounds and returns the next State; nothing is mutated in place, so a
// State can be stored, serialized and replayed.
package view
