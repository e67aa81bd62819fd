// Package modem maps coded bit streams to complex baseband symbols and
// back, for the two phase-shift keying schemes the link simulator sweeps.
//
// Constellations (unit average symbol energy):
//
//	BPSK  0 -> -1+0i        1 -> +1+0i
//	QPSK  pair (b0,b1) -> (I + jQ)/sqrt(2), Gray coded:
//	      (0,0) -> (+1+1j)/sqrt(2)    (0,1) -> (-1+1j)/sqrt(2)
//	      (1,1) -> (-1-1j)/sqrt(2)    (1,0) -> (+1-1j)/sqrt(2)
//
// b0 selects the quadrature sign, b1 the in-phase sign; adjacent quadrants
// differ in exactly one bit, so a small phase error costs one bit, not two.
//
// Demodulation is memoryless minimum distance: each component is
// thresholded at zero, with >= 0 counting as the positive half-plane.
// Noise of any power therefore always yields a decision, never an error.
//
// Carrier provides the optional passband stage: pulse shaping, mixing onto
// a cosine carrier, and the matching downconversion with a moving-average
// low-pass filter. Baseband sweeps skip it entirely.
package modem
