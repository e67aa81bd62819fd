package linksim

import (
	"errors"

	"github.com/thomazritter/simulacao-redes2/modem"
)

// ErrNoSNRValues indicates a sweep was started with an empty SNR list.
var ErrNoSNRValues = errors.New("linksim: no SNR values")

// Result is the outcome of one sweep point: one scheme at one SNR, all
// trials accumulated.
type Result struct {
	// Scheme is the modulation the pass ran with.
	Scheme modem.Scheme

	// Carrier reports whether the pass went through the passband stage.
	Carrier bool

	// SNRdB is the Eb/N0 the channel was driven at, in decibels.
	SNRdB float64

	// BitErrors and TotalBits count coded bits compared position by
	// position across all trials of the pass. BER is their ratio, 0
	// when no bits were compared.
	BitErrors int
	TotalBits int
	BER       float64

	// Text is the message recovered by the last trial, however
	// corrupted it came out.
	Text string

	// Err marks a failed pass. A failed pass carries zero counters and
	// never aborts the rest of the sweep.
	Err error
}
