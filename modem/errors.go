package modem

import "errors"

var (
	// ErrUnknownScheme indicates a Scheme value outside the supported set.
	ErrUnknownScheme = errors.New("modem: unknown modulation scheme")

	// ErrBitLength indicates a bit stream whose length does not divide
	// evenly into symbols for the chosen scheme.
	ErrBitLength = errors.New("modem: bit stream length incompatible with scheme")

	// ErrBitValue indicates a bit stream element outside {0, 1}.
	ErrBitValue = errors.New("modem: bits must be 0 or 1")

	// ErrCarrierConfig indicates carrier parameters that cannot describe
	// a passband waveform.
	ErrCarrierConfig = errors.New("modem: invalid carrier configuration")
)
