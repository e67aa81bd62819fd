// Package linksim sequences the full digital link and sweeps it across
// modulation schemes and channel qualities.
//
// One pass sends a Manchester-coded message through
//
//	text → bits → coded bits → symbols → noisy symbols → decided bits
//	     → decoded bits → recovered text
//
// and reports the bit error rate of the coded stream together with the
// recovered text. Run repeats that pass for every configured scheme at
// every requested SNR and returns the results in sweep order, schemes
// outer, SNR values in input order.
//
// The surrounding packages divide the link into stages:
//
//	bitcodec     text framing and Manchester line coding
//	modem        BPSK and QPSK mapping plus the optional carrier stage
//	awgn         additive white Gaussian noise channel
//	report       BER tables, curve rendering and progress logging
//
// linksim wires the stages together; cmd/linksim drives a sweep from
// the command line and writes the report artifacts.
//
// Measurement point:
//
//	Errors are counted on the coded stream, before Manchester decoding,
//	by position-by-position comparison with the transmitted coded bits.
//	Counting after decoding would let the tie-break rule mask or double
//	raw channel errors, so the coded stream is the stable place to
//	measure. The recovered text still goes through the full decoder.
//
// Determinism:
//
//	A non-zero Seed fixes every noise draw of the sweep regardless of
//	Workers: each (scheme, SNR) pass derives its own stream seed from
//	the master seed and its sweep index via a SplitMix64 mix, so threads
//	never race for a shared source. Seed zero asks for fresh entropy.
//
// Failure containment:
//
//	A pass that cannot run (unknown scheme, invalid SNR, carrier
//	misconfiguration) produces a Result with Err set and zero counters.
//	The remaining passes are unaffected. Run itself returns an error
//	only when no pass could start at all: an unencodable message or an
//	empty SNR list.
//
// Example:
//
//	results, err := linksim.Run("Hello", []float64{0, 4, 8}, linksim.Options{Seed: 1})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("%s @ %4.1f dB: BER %.4f\n", r.Scheme, r.SNRdB, r.BER)
//	}
package linksim
