package modem

import (
	"fmt"
	"math"
)

// Carrier describes the optional passband stage of the link.
//
// Freq is the carrier frequency in cycles per symbol period and
// SampleRate the number of passband samples per symbol. With an integer
// Freq and SampleRate a multiple of the carrier period, the 2f image
// produced by downconversion cancels exactly under the one-symbol
// moving average, which is the configuration the simulator defaults to
// (Freq 1, SampleRate 10).
//
// PulseShaping ramps the in-phase and quadrature components linearly
// between symbol instants instead of holding them flat. The ramp keeps
// the filtered decision sample dominated by its own symbol, so the
// noiseless round trip is exact; with flat pulses the decision sample
// sits on the pulse boundary and is ambiguous across a symbol
// transition.
type Carrier struct {
	Freq         float64
	SampleRate   int
	PulseShaping bool
}

// validate rejects parameters that cannot describe a passband waveform.
func (c Carrier) validate() error {
	if math.IsNaN(c.Freq) || math.IsInf(c.Freq, 0) || c.Freq <= 0 {
		return fmt.Errorf("%w: Freq = %v", ErrCarrierConfig, c.Freq)
	}
	if c.SampleRate < 1 {
		return fmt.Errorf("%w: SampleRate = %d", ErrCarrierConfig, c.SampleRate)
	}

	return nil
}

// Upconvert shapes symbols into SampleRate samples each and mixes them
// onto the carrier: sample(t) = I(t)*cos(2*pi*Freq*t) - Q(t)*sin(2*pi*Freq*t),
// with t counted in symbol periods. BPSK symbols have Q = 0 throughout,
// reducing the mix to the plain cosine branch.
//
// Complexity: O(len(symbols) * SampleRate) time and space.
func (c Carrier) Upconvert(symbols []complex128) ([]float64, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	shaped := c.shape(symbols)
	samples := make([]float64, len(shaped))
	for i, sym := range shaped {
		phase := 2 * math.Pi * c.Freq * float64(i) / float64(c.SampleRate)
		samples[i] = real(sym)*math.Cos(phase) - imag(sym)*math.Sin(phase)
	}

	return samples, nil
}

// Downconvert mixes passband samples with the local carrier, low-pass
// filters both quadrature branches with a one-symbol moving average, and
// decimates to one complex symbol per SampleRate samples. Amplitudes come
// back scaled by roughly 1/2 (the cos^2 term); decisions threshold at
// zero, so the scale is irrelevant to demodulation.
//
// Trailing samples that do not fill a whole symbol are dropped, matching
// the decimation grid of Upconvert.
//
// Complexity: O(len(samples) * SampleRate) time, O(len(samples)) space.
func (c Carrier) Downconvert(samples []float64) ([]complex128, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	n := len(samples) / c.SampleRate
	if n == 0 {
		return []complex128{}, nil
	}

	inphase := make([]float64, len(samples))
	quadrature := make([]float64, len(samples))
	for i, x := range samples {
		phase := 2 * math.Pi * c.Freq * float64(i) / float64(c.SampleRate)
		inphase[i] = x * math.Cos(phase)
		quadrature[i] = -x * math.Sin(phase)
	}

	inphase = movingAverage(inphase, c.SampleRate)
	quadrature = movingAverage(quadrature, c.SampleRate)

	symbols := make([]complex128, n)
	for k := range symbols {
		i := k * c.SampleRate
		symbols[k] = complex(inphase[i], quadrature[i])
	}

	return symbols, nil
}

// shape expands each symbol to SampleRate samples: a linear ramp between
// symbol instants when PulseShaping is set (the final symbol holds its
// value), a flat hold otherwise.
func (c Carrier) shape(symbols []complex128) []complex128 {
	n := len(symbols)
	sps := c.SampleRate
	out := make([]complex128, n*sps)

	if !c.PulseShaping {
		for i := range out {
			out[i] = symbols[i/sps]
		}

		return out
	}

	for i := range out {
		pos := float64(i) / float64(sps)
		k := int(pos)
		if k >= n-1 {
			out[i] = symbols[n-1]

			continue
		}
		frac := pos - float64(k)
		a, b := symbols[k], symbols[k+1]
		out[i] = complex(
			real(a)+(real(b)-real(a))*frac,
			imag(a)+(imag(b)-imag(a))*frac,
		)
	}

	return out
}

// movingAverage applies a centered window mean with zero padding at the
// edges, the discrete equivalent of convolving with a box kernel. Windows
// below 2 pass the signal through untouched.
func movingAverage(x []float64, window int) []float64 {
	if window < 2 {
		return x
	}

	out := make([]float64, len(x))
	half := (window - 1) / 2
	inv := 1 / float64(window)
	for n := range out {
		lo := n + half - window + 1
		hi := n + half
		if lo < 0 {
			lo = 0
		}
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		var sum float64
		for i := lo; i <= hi; i++ {
			sum += x[i]
		}
		out[n] = sum * inv
	}

	return out
}
