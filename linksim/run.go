package linksim

import (
	"fmt"
	"math"
	"sync"

	"github.com/thomazritter/simulacao-redes2/awgn"
	"github.com/thomazritter/simulacao-redes2/bitcodec"
	"github.com/thomazritter/simulacao-redes2/modem"
)

// job is one sweep point. The index doubles as the result slot and the
// seed-derivation stream, so a pass lands in the same place with the
// same noise no matter which worker picks it up.
type job struct {
	index  int
	scheme modem.Scheme
	snrDB  float64
}

// Run encodes the message once and sweeps it across every configured
// scheme at every SNR value. Results come back in sweep order, schemes
// outer, SNR values in input order, one Result per (scheme, SNR) pair.
//
// A pass that fails reports its error in Result.Err and leaves the rest
// of the sweep running. Run itself fails only when no pass could start:
// the message does not encode, or the SNR list is empty.
//
// Complexity: O(schemes * SNRs * trials * len(message)) work, spread
// over min(Workers, passes) goroutines.
func Run(message string, snrDB []float64, opts Options) ([]Result, error) {
	opts = opts.normalized()

	if len(snrDB) == 0 {
		return nil, ErrNoSNRValues
	}

	bits, err := bitcodec.TextToBits(message)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	coded, err := bitcodec.ManchesterEncode(bits)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	master := masterSeed(opts.Seed)

	jobs := make([]job, 0, len(opts.Schemes)*len(snrDB))
	for _, scheme := range opts.Schemes {
		for _, snr := range snrDB {
			jobs = append(jobs, job{index: len(jobs), scheme: scheme, snrDB: snr})
		}
	}

	results := make([]Result, len(jobs))

	// Each result slot has exactly one writer; the mutex only serializes
	// the observer, the sweep's single shared accumulation point.
	var mu sync.Mutex
	runJob := func(j job) {
		res := runPass(coded, j.scheme, j.snrDB, opts, deriveSeed(master, uint64(j.index)))
		results[j.index] = res
		if opts.Observer != nil {
			mu.Lock()
			opts.Observer(res)
			mu.Unlock()
		}
	}

	workers := opts.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 1 {
		for _, j := range jobs {
			runJob(j)
		}

		return results, nil
	}

	queue := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				runJob(j)
			}
		}()
	}
	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	return results, nil
}

// runPass drives all trials of one sweep point on its own noise stream
// and folds their error counts into a single Result.
func runPass(coded []byte, scheme modem.Scheme, snrDB float64, opts Options, seed uint64) Result {
	res := Result{Scheme: scheme, Carrier: opts.Carrier.Enabled, SNRdB: snrDB}
	failed := func(err error) Result {
		return Result{Scheme: scheme, Carrier: opts.Carrier.Enabled, SNRdB: snrDB, Err: err}
	}

	channel := awgn.New(seed)
	for trial := 0; trial < opts.Trials; trial++ {
		received, err := transmit(coded, scheme, snrDB, opts.Carrier, channel)
		if err != nil {
			return failed(err)
		}

		errs, total := BitErrors(coded, received)
		res.BitErrors += errs
		res.TotalBits += total

		decoded, err := bitcodec.ManchesterDecode(received)
		if err != nil {
			return failed(err)
		}
		text, err := bitcodec.BitsToText(decoded)
		if err != nil {
			return failed(err)
		}
		res.Text = text
	}

	if res.TotalBits > 0 {
		res.BER = float64(res.BitErrors) / float64(res.TotalBits)
	}

	return res
}

// transmit pushes coded bits through one modulate-channel-demodulate
// round, via the passband stage when the carrier is enabled.
func transmit(coded []byte, scheme modem.Scheme, snrDB float64, carrierOpts CarrierOptions, channel *awgn.Channel) ([]byte, error) {
	symbols, err := modem.Modulate(coded, scheme)
	if err != nil {
		return nil, err
	}

	if !carrierOpts.Enabled {
		noisy, err := channel.AddNoise(symbols, snrDB, scheme.BitsPerSymbol())
		if err != nil {
			return nil, err
		}

		return modem.Demodulate(noisy, scheme)
	}

	carrier := modem.Carrier{
		Freq:         carrierOpts.Freq,
		SampleRate:   carrierOpts.SampleRate,
		PulseShaping: true,
	}
	passband, err := carrier.Upconvert(symbols)
	if err != nil {
		return nil, err
	}

	// The sample channel is power-referenced, so the sweep's Eb/N0 is
	// restated per symbol: Es/N0 = k * Eb/N0.
	sampleSNR := snrDB + 10*math.Log10(float64(scheme.BitsPerSymbol()))
	noisy, err := channel.AddNoiseSamples(passband, sampleSNR)
	if err != nil {
		return nil, err
	}

	recovered, err := carrier.Downconvert(noisy)
	if err != nil {
		return nil, err
	}

	return modem.Demodulate(recovered, scheme)
}

// BitErrors compares two bit streams position by position over their
// shared prefix and returns the mismatch count and the compared length.
func BitErrors(sent, received []byte) (errs, total int) {
	total = len(sent)
	if len(received) < total {
		total = len(received)
	}
	for i := 0; i < total; i++ {
		if sent[i] != received[i] {
			errs++
		}
	}

	return errs, total
}
