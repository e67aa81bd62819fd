package awgn

import "errors"

var (
	// ErrBadSNR is returned when the requested SNR is NaN or infinite.
	ErrBadSNR = errors.New("awgn: invalid SNR")

	// ErrBadBitsPerSymbol is returned when the bits-per-symbol count is
	// not positive.
	ErrBadBitsPerSymbol = errors.New("awgn: invalid bits per symbol")
)
