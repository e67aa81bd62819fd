package bitcodec

import (
	"errors"
	"fmt"
)

// ErrEncoding is the class of all codec failures. Every error returned by
// this package matches it via errors.Is.
var ErrEncoding = errors.New("bitcodec: encoding error")

var (
	// ErrCharRange reports a character that does not fit in one octet.
	ErrCharRange = fmt.Errorf("%w: character outside 8-bit range", ErrEncoding)

	// ErrBitCount reports a bit stream whose length is not a multiple of 8.
	ErrBitCount = fmt.Errorf("%w: bit count must be a multiple of 8", ErrEncoding)

	// ErrOddCodedLength reports a Manchester stream with an odd number of half-bits.
	ErrOddCodedLength = fmt.Errorf("%w: Manchester stream length must be even", ErrEncoding)

	// ErrBitValue reports a bit stream element outside {0, 1}.
	ErrBitValue = fmt.Errorf("%w: bits must be 0 or 1", ErrEncoding)
)
