package awgn

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Channel is an AWGN source over one pseudo-random stream.
type Channel struct {
	src rand.Source
}

// New returns a Channel seeded with the given value. Equal seeds yield
// identical noise sequences.
func New(seed uint64) *Channel {
	return &Channel{src: rand.NewSource(seed)}
}

// NewFromSource returns a Channel drawing from the caller's source.
func NewFromSource(src rand.Source) *Channel {
	return &Channel{src: src}
}

// AddNoise corrupts a unit-energy symbol stream with Gaussian noise at
// the given Eb/N0, where bitsPerSymbol is the k of the scheme that
// produced the stream. The input is never modified; the noisy stream is
// returned as a fresh slice.
//
// With k = 1 the constellation is real, so the noise stays on the real
// axis at full power N0. With k >= 2 the noise is circular complex with
// variance N0/2 per component.
func (c *Channel) AddNoise(symbols []complex128, snrDB float64, bitsPerSymbol int) ([]complex128, error) {
	if math.IsNaN(snrDB) || math.IsInf(snrDB, 0) {
		return nil, fmt.Errorf("%w: %v dB", ErrBadSNR, snrDB)
	}
	if bitsPerSymbol < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBitsPerSymbol, bitsPerSymbol)
	}

	// Unit symbol energy by construction, so Eb = 1/k.
	ebOverN0 := math.Pow(10, snrDB/10)
	n0 := 1 / (float64(bitsPerSymbol) * ebOverN0)

	noisy := make([]complex128, len(symbols))
	if bitsPerSymbol == 1 {
		normal := distuv.Normal{Mu: 0, Sigma: math.Sqrt(n0), Src: c.src}
		for i, sym := range symbols {
			noisy[i] = sym + complex(normal.Rand(), 0)
		}

		return noisy, nil
	}

	normal := distuv.Normal{Mu: 0, Sigma: math.Sqrt(n0 / 2), Src: c.src}
	for i, sym := range symbols {
		noisy[i] = sym + complex(normal.Rand(), normal.Rand())
	}

	return noisy, nil
}

// AddNoiseSamples corrupts a real passband waveform with Gaussian noise
// scaled against the measured signal power, so the requested snrDB holds
// per sample regardless of carrier amplitude or pulse shape. A zero-power
// waveform comes back unchanged.
func (c *Channel) AddNoiseSamples(samples []float64, snrDB float64) ([]float64, error) {
	if math.IsNaN(snrDB) || math.IsInf(snrDB, 0) {
		return nil, fmt.Errorf("%w: %v dB", ErrBadSNR, snrDB)
	}

	noisy := make([]float64, len(samples))
	if len(samples) == 0 {
		return noisy, nil
	}

	power := floats.Dot(samples, samples) / float64(len(samples))
	if power == 0 {
		copy(noisy, samples)

		return noisy, nil
	}

	noisePower := power / math.Pow(10, snrDB/10)
	normal := distuv.Normal{Mu: 0, Sigma: math.Sqrt(noisePower), Src: c.src}
	for i, x := range samples {
		noisy[i] = x + normal.Rand()
	}

	return noisy, nil
}
