package linksim

import "github.com/thomazritter/simulacao-redes2/modem"

// Default carrier geometry: one cycle per symbol, ten samples per symbol.
const (
	DefaultCarrierFreq = 1.0
	DefaultSampleRate  = 10
)

// Observer receives every finished pass, failures included. Run
// serializes the calls even under parallelism, so an Observer may write
// to shared state without its own locking; arrival order is only
// guaranteed for sequential sweeps.
type Observer func(Result)

// CarrierOptions configures the optional passband stage.
//
// Enabled    – route passes through upconversion, sample-level noise and
//              downconversion instead of symbol-level noise.
// Freq       – carrier frequency in cycles per symbol period.
// SampleRate – passband samples per symbol.
type CarrierOptions struct {
	Enabled    bool
	Freq       float64
	SampleRate int
}

// Options configures a sweep.
//
// Schemes  – modulations to sweep, in report order. Empty means both
//            BPSK and QPSK.
// Seed     – non-zero makes the whole sweep reproducible, worker count
//            included; zero asks for fresh entropy.
// Trials   – independent noise draws accumulated per sweep point.
//            Values below 1 count as 1.
// Workers  – passes in flight at once. Values below 2 run sequentially.
// Carrier  – passband stage configuration.
// Observer – when non-nil, invoked once per finished pass.
type Options struct {
	Schemes  []modem.Scheme
	Seed     uint64
	Trials   int
	Workers  int
	Carrier  CarrierOptions
	Observer Observer
}

// DefaultOptions returns the configuration the command-line tool runs
// with: both schemes, one trial, sequential, baseband, entropy seeding.
func DefaultOptions() Options {
	return Options{
		Schemes: []modem.Scheme{modem.BPSK, modem.QPSK},
		Trials:  1,
		Workers: 1,
		Carrier: CarrierOptions{
			Freq:       DefaultCarrierFreq,
			SampleRate: DefaultSampleRate,
		},
	}
}

// normalized fills the gaps a zero-valued Options leaves open so Run can
// treat the literal Options{} like DefaultOptions().
func (o Options) normalized() Options {
	if len(o.Schemes) == 0 {
		o.Schemes = []modem.Scheme{modem.BPSK, modem.QPSK}
	}
	if o.Trials < 1 {
		o.Trials = 1
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Carrier.Freq == 0 {
		o.Carrier.Freq = DefaultCarrierFreq
	}
	if o.Carrier.SampleRate == 0 {
		o.Carrier.SampleRate = DefaultSampleRate
	}

	return o
}
