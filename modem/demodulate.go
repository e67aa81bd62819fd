package modem

import "fmt"

// Demodulate recovers bits from received symbols by memoryless minimum
// distance: each quadrature component is thresholded at zero, >= 0
// counting as the positive half-plane. The output length is exactly
// len(symbols) * s.BitsPerSymbol(), in modulation order.
//
// Complexity: O(len(symbols)) time and space.
func Demodulate(symbols []complex128, s Scheme) ([]byte, error) {
	switch s {
	case BPSK:
		bits := make([]byte, len(symbols))
		for i, sym := range symbols {
			if real(sym) >= 0 {
				bits[i] = 1
			}
		}

		return bits, nil

	case QPSK:
		bits := make([]byte, 0, 2*len(symbols))
		for _, sym := range symbols {
			var b0, b1 byte
			if imag(sym) < 0 {
				b0 = 1
			}
			if real(sym) < 0 {
				b1 = 1
			}
			bits = append(bits, b0, b1)
		}

		return bits, nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownScheme, s)
	}
}
