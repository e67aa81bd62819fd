// Package awgn models an additive white Gaussian noise channel for
// baseband symbol streams and passband sample trains.
//
// The symbol-level channel follows the Eb/N0 convention. Constellations
// produced by package modem have unit average energy per symbol, so the
// energy per coded bit is Eb = 1/k for a scheme carrying k bits per
// symbol, and the one-sided noise density at a given SNR is
//
//	N0 = Eb / 10^(snrDB/10)
//
// A complex constellation receives circular noise with variance N0 split
// equally between the components. A real constellation (k = 1) receives
// the whole N0 on the real axis and nothing on the imaginary axis.
//
// The sample-level channel (AddNoiseSamples) is power-referenced instead:
// it measures the mean square of the waveform it is given and scales the
// noise to hit the requested SNR, which is the natural convention once a
// carrier has spread each symbol over many samples.
//
// A Channel draws from a single stream seeded at construction. Repeated
// calls advance the stream, so equal inputs produce different noise while
// equal seeds reproduce entire runs. A Channel is not safe for concurrent
// use; give each goroutine its own.
package awgn
