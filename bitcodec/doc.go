// Package bitcodec converts text to raw bit streams and applies the
// Manchester line code used on the simulated link.
//
// Conventions:
//   - Characters are 8-bit: each character of the message becomes exactly
//     eight bits, most significant bit first ('A' -> 0 1 0 0 0 0 0 1).
//   - Bit streams are []byte slices whose elements are 0 or 1.
//   - Manchester doubles the stream: 0 -> (1,0), 1 -> (0,1). The second
//     half-bit of each pair carries the data bit, so decoding keeps the
//     second element of every pair. Corrupted pairs still resolve under
//     the same rule: (0,0) decodes to 0 and (1,1) decodes to 1.
//
// Every failure is a sentinel wrapping ErrEncoding, so callers can match
// the whole class with errors.Is(err, bitcodec.ErrEncoding) or a specific
// cause such as ErrBitCount.
package bitcodec
