package bitcodec

import (
	"fmt"
	"strings"
)

// charBits is the fixed width of one encoded character.
const charBits = 8

// maxChar is the largest code point that fits charBits.
const maxChar = 1<<charBits - 1

// TextToBits expands text into one bit per slice element, eight bits per
// character, most significant bit first. Characters above U+00FF do not
// fit the fixed 8-bit frame and return ErrCharRange.
//
// Complexity: O(8·len(text)) time and space.
func TextToBits(text string) ([]byte, error) {
	bits := make([]byte, 0, len(text)*charBits)
	for _, r := range text {
		if r > maxChar {
			return nil, fmt.Errorf("%w: %q", ErrCharRange, r)
		}
		for shift := charBits - 1; shift >= 0; shift-- {
			bits = append(bits, byte(r>>shift)&1)
		}
	}

	return bits, nil
}

// BitsToText packs bits back into characters, inverting TextToBits.
// The length must be a multiple of 8 (ErrBitCount) and every element must
// be 0 or 1 (ErrBitValue). Any 8-bit pattern decodes to a character, so a
// corrupted stream of valid length still yields text.
//
// Complexity: O(len(bits)) time and space.
func BitsToText(bits []byte) (string, error) {
	if len(bits)%charBits != 0 {
		return "", fmt.Errorf("%w: got %d bits", ErrBitCount, len(bits))
	}

	var sb strings.Builder
	sb.Grow(len(bits) / charBits)
	for i := 0; i < len(bits); i += charBits {
		var code int
		for _, b := range bits[i : i+charBits] {
			if b > 1 {
				return "", fmt.Errorf("%w: got %d at offset %d", ErrBitValue, b, i)
			}
			code = code<<1 | int(b)
		}
		sb.WriteRune(rune(code))
	}

	return sb.String(), nil
}
