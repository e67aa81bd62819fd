// Package report renders sweep results into the simulator's two output
// artifacts, a tab-separated BER table and a BER-versus-SNR curve, plus
// a logging observer for live progress.
//
// Results are grouped into one series per (scheme, passband) pair, in
// first-appearance order. When both baseband and passband series are
// present, table columns carry the _sem/_com suffixes (without/with
// carrier) so the two runs sit side by side.
//
// The curve uses a logarithmic BER axis and silently drops zero-BER
// points the way semilog plotting conventionally does; a sweep with no
// errors at all falls back to a linear axis so the flat zero line stays
// visible.
package report
