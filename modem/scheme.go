package modem

import (
	"fmt"
	"strings"
)

// Scheme selects a modulation scheme.
type Scheme int

const (
	// BPSK carries one bit per symbol on the real axis.
	BPSK Scheme = iota

	// QPSK carries two bits per symbol, one per quadrature component.
	QPSK
)

// String returns the conventional name of the scheme.
func (s Scheme) String() string {
	switch s {
	case BPSK:
		return "BPSK"
	case QPSK:
		return "QPSK"
	default:
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
}

// BitsPerSymbol returns the number of coded bits one symbol carries,
// or 0 for an unknown scheme.
func (s Scheme) BitsPerSymbol() int {
	switch s {
	case BPSK:
		return 1
	case QPSK:
		return 2
	default:
		return 0
	}
}

// ParseScheme maps a conventional scheme name back to its Scheme value.
// Matching ignores case, so "bpsk" and "BPSK" are the same scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToUpper(name) {
	case "BPSK":
		return BPSK, nil
	case "QPSK":
		return QPSK, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
}
