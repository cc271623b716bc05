// Package bandpower integrates power spectral densities over frequency bands.
//
// Bands are closed intervals [Low, High] in Hz. Integration uses the
// trapezoidal rule over the PSD bins inside the band; a band that contains
// fewer than two bins integrates to exactly 0.
package bandpower
