package signal

import "errors"

var (
	// ErrInsufficientSamples reports a channel too short for a meaningful spectrum.
	ErrInsufficientSamples = errors.New("insufficient samples")
	// ErrFlatSignal reports a channel whose standard deviation is below the noise floor.
	ErrFlatSignal = errors.New("flat signal")
)
