// Package eeg runs the per-channel spectral analysis of a recording and
// aggregates band powers across channels.
//
// Every channel goes through the same pipeline: preprocessing (optional
// sentinel drop, length and flatness checks, mean removal), a Hann-windowed
// periodogram, and trapezoidal band integration. Channels are independent
// and are analyzed concurrently. A channel that fails preprocessing is kept
// in the report as invalid and excluded from the max/min/mean aggregates.
package eeg
