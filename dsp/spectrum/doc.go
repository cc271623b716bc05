// Package spectrum estimates power spectral densities of sampled signals.
//
// The estimator is a single-segment periodogram: the whole signal is tapered
// with one window, transformed once and scaled by fs*sum(w^2). No segment
// averaging is performed, so frequency resolution is fs/N for an N-sample
// input.
package spectrum
