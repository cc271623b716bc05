package bandpower

import "errors"

var (
	// ErrInvalidBand reports a band with Low > High or non-finite edges.
	ErrInvalidBand = errors.New("invalid band")
	// ErrUnknownBand reports a band name missing from a band set.
	ErrUnknownBand = errors.New("unknown band")
)
