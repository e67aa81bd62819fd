package modem

import (
	"fmt"
	"math"
)

// invSqrt2 normalizes QPSK symbols to unit average energy.
const invSqrt2 = 1 / math.Sqrt2

// Modulate maps bits onto baseband symbols for the chosen scheme.
//
// BPSK consumes one bit per symbol, QPSK consumes two; for QPSK the
// stream length must be even (ErrBitLength). Elements outside {0, 1}
// return ErrBitValue.
//
// Complexity: O(len(bits)) time and space.
func Modulate(bits []byte, s Scheme) ([]complex128, error) {
	switch s {
	case BPSK:
		return modulateBPSK(bits)
	case QPSK:
		return modulateQPSK(bits)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, s)
	}
}

// modulateBPSK maps 0 -> -1 and 1 -> +1 on the real axis.
func modulateBPSK(bits []byte) ([]complex128, error) {
	symbols := make([]complex128, len(bits))
	for i, b := range bits {
		switch b {
		case 0:
			symbols[i] = -1
		case 1:
			symbols[i] = +1
		default:
			return nil, fmt.Errorf("%w: got %d at offset %d", ErrBitValue, b, i)
		}
	}

	return symbols, nil
}

// modulateQPSK maps Gray-coded bit pairs onto quadrants: the first bit of
// a pair selects the quadrature sign, the second the in-phase sign, both
// with 0 -> positive. Symbols are scaled by 1/sqrt(2) so the average
// energy stays 1.
func modulateQPSK(bits []byte) ([]complex128, error) {
	if len(bits)%2 != 0 {
		return nil, fmt.Errorf("%w: QPSK needs bit pairs, got %d bits", ErrBitLength, len(bits))
	}

	symbols := make([]complex128, len(bits)/2)
	for i := range symbols {
		b0, b1 := bits[2*i], bits[2*i+1]
		if b0 > 1 || b1 > 1 {
			return nil, fmt.Errorf("%w: pair (%d,%d) at symbol %d", ErrBitValue, b0, b1, i)
		}

		re, im := invSqrt2, invSqrt2
		if b1 == 1 {
			re = -re
		}
		if b0 == 1 {
			im = -im
		}
		symbols[i] = complex(re, im)
	}

	return symbols, nil
}
