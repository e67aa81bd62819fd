package bitcodec

import "fmt"

// ManchesterEncode maps every data bit to a half-bit pair: 0 -> (1,0),
// 1 -> (0,1). The output is exactly twice as long as the input. Elements
// outside {0, 1} return ErrBitValue.
//
// Complexity: O(len(bits)) time and space.
func ManchesterEncode(bits []byte) ([]byte, error) {
	coded := make([]byte, 0, len(bits)*2)
	for i, b := range bits {
		switch b {
		case 0:
			coded = append(coded, 1, 0)
		case 1:
			coded = append(coded, 0, 1)
		default:
			return nil, fmt.Errorf("%w: got %d at offset %d", ErrBitValue, b, i)
		}
	}

	return coded, nil
}

// ManchesterDecode recovers data bits from half-bit pairs by keeping the
// second half-bit of each pair. The rule is total: clean pairs invert
// ManchesterEncode, and corrupted pairs resolve as (0,0) -> 0, (1,1) -> 1.
// The input length must be even (ErrOddCodedLength) and every element
// must be 0 or 1 (ErrBitValue).
//
// Complexity: O(len(coded)) time, O(len(coded)/2) space.
func ManchesterDecode(coded []byte) ([]byte, error) {
	if len(coded)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d half-bits", ErrOddCodedLength, len(coded))
	}

	bits := make([]byte, len(coded)/2)
	for i := range bits {
		first, second := coded[2*i], coded[2*i+1]
		if first > 1 || second > 1 {
			return nil, fmt.Errorf("%w: pair (%d,%d) at offset %d", ErrBitValue, first, second, 2*i)
		}
		bits[i] = second
	}

	return bits, nil
}
