package modem_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomazritter/simulacao-redes2/modem"
)

// defaultCarrier is the configuration the simulator runs with: one carrier
// cycle per symbol, ten samples per symbol, linear pulse shaping.
func defaultCarrier() modem.Carrier {
	return modem.Carrier{Freq: 1, SampleRate: 10, PulseShaping: true}
}

// TestCarrier_ConfigErrors rejects frequencies and sample rates that cannot
// describe a waveform.
func TestCarrier_ConfigErrors(t *testing.T) {
	bad := []modem.Carrier{
		{Freq: 0, SampleRate: 10},
		{Freq: -1, SampleRate: 10},
		{Freq: math.NaN(), SampleRate: 10},
		{Freq: math.Inf(1), SampleRate: 10},
		{Freq: 1, SampleRate: 0},
		{Freq: 1, SampleRate: -3},
	}
	for _, carrier := range bad {
		_, err := carrier.Upconvert([]complex128{1})
		assert.ErrorIs(t, err, modem.ErrCarrierConfig, "Upconvert %+v", carrier)

		_, err = carrier.Downconvert([]float64{1})
		assert.ErrorIs(t, err, modem.ErrCarrierConfig, "Downconvert %+v", carrier)
	}
}

// TestCarrier_UpconvertSampleCount checks the passband length contract.
func TestCarrier_UpconvertSampleCount(t *testing.T) {
	carrier := defaultCarrier()
	symbols, err := modem.Modulate([]byte{1, 0, 1}, modem.BPSK)
	require.NoError(t, err)

	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	assert.Len(t, samples, len(symbols)*carrier.SampleRate)
}

// TestCarrier_RoundTripBPSK sends an alternating BPSK stream through the
// noiseless passband and back. Alternation is the worst case for the
// matched filter, so recovering it exactly covers every other pattern.
func TestCarrier_RoundTripBPSK(t *testing.T) {
	carrier := defaultCarrier()
	bits := []byte{1, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 0}

	symbols, err := modem.Modulate(bits, modem.BPSK)
	require.NoError(t, err)
	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	recovered, err := carrier.Downconvert(samples)
	require.NoError(t, err)
	require.Len(t, recovered, len(symbols))

	back, err := modem.Demodulate(recovered, modem.BPSK)
	require.NoError(t, err)
	assert.Equal(t, bits, back, "noiseless passband round trip")
}

// TestCarrier_RoundTripQPSK repeats the passband round trip with both
// quadrature branches active.
func TestCarrier_RoundTripQPSK(t *testing.T) {
	carrier := defaultCarrier()
	bits := []byte{0, 0, 0, 1, 1, 1, 1, 0, 1, 1, 0, 0, 0, 1, 1, 0}

	symbols, err := modem.Modulate(bits, modem.QPSK)
	require.NoError(t, err)
	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	recovered, err := carrier.Downconvert(samples)
	require.NoError(t, err)

	back, err := modem.Demodulate(recovered, modem.QPSK)
	require.NoError(t, err)
	assert.Equal(t, bits, back, "noiseless passband round trip")
}

// TestCarrier_InteriorAmplitude pins the cos^2 scale factor: an interior
// symbol of a constant stream comes back at exactly half its amplitude.
func TestCarrier_InteriorAmplitude(t *testing.T) {
	carrier := defaultCarrier()
	symbols := []complex128{1, 1, 1, 1}

	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	recovered, err := carrier.Downconvert(samples)
	require.NoError(t, err)
	require.Len(t, recovered, 4)

	assert.InDelta(t, 0.5, real(recovered[1]), 1e-9, "interior in-phase amplitude")
	assert.InDelta(t, 0.0, imag(recovered[1]), 1e-9, "no quadrature leakage")
}

// TestCarrier_FlatPulsesSteadyStream verifies the unshaped waveform still
// round-trips when the stream has no symbol transitions.
func TestCarrier_FlatPulsesSteadyStream(t *testing.T) {
	carrier := modem.Carrier{Freq: 1, SampleRate: 10}
	bits := []byte{1, 1, 1, 1, 1, 1}

	symbols, err := modem.Modulate(bits, modem.BPSK)
	require.NoError(t, err)
	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	recovered, err := carrier.Downconvert(samples)
	require.NoError(t, err)

	back, err := modem.Demodulate(recovered, modem.BPSK)
	require.NoError(t, err)
	assert.Equal(t, bits, back)
}

// TestCarrier_DownconvertTruncates drops trailing samples that do not fill
// a whole symbol.
func TestCarrier_DownconvertTruncates(t *testing.T) {
	carrier := defaultCarrier()
	symbols := []complex128{1, -1}

	samples, err := carrier.Upconvert(symbols)
	require.NoError(t, err)
	require.Len(t, samples, 20)

	partial, err := carrier.Downconvert(samples[:15])
	require.NoError(t, err)
	assert.Len(t, partial, 1, "15 samples hold one whole symbol")

	padded, err := carrier.Downconvert(append(samples, 0, 0, 0))
	require.NoError(t, err)
	assert.Len(t, padded, 2, "trailing pad never invents a symbol")
}

// TestCarrier_EmptyInput keeps both directions total on empty streams.
func TestCarrier_EmptyInput(t *testing.T) {
	carrier := defaultCarrier()

	samples, err := carrier.Upconvert(nil)
	require.NoError(t, err)
	assert.Empty(t, samples)

	symbols, err := carrier.Downconvert(nil)
	require.NoError(t, err)
	assert.Empty(t, symbols)
}
