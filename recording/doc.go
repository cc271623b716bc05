// Package recording holds multi-channel EEG recordings and reads them from
// disk.
//
// Two formats are supported: the whitespace-delimited sample table written
// by the acquisition software (rows are time samples, columns are channels,
// lines starting with ';' are comments), optionally gzip-compressed, and
// EDF/EDF+. The sample table carries no sample rate, so it is supplied by
// the caller and defaults to 5000 Hz.
package recording
