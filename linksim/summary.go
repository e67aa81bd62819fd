package linksim

import (
	"gonum.org/v1/gonum/stat"

	"github.com/thomazritter/simulacao-redes2/modem"
)

// Summary aggregates one (scheme, stage) series of a finished sweep.
type Summary struct {
	Scheme    modem.Scheme
	Carrier   bool
	Passes    int     // passes that completed
	Failures  int     // passes that ended with Err set
	BitErrors int     // mismatches summed over completed passes
	TotalBits int     // compared bits summed over completed passes
	MeanBER   float64 // unweighted mean of per-pass BERs
}

// Summarize folds sweep results into one Summary per (scheme, carrier)
// series, in first-appearance order. Failed passes count toward Failures
// and contribute nothing else.
func Summarize(results []Result) []Summary {
	type key struct {
		scheme  modem.Scheme
		carrier bool
	}

	order := make([]key, 0, 4)
	series := make(map[key]*Summary)
	bers := make(map[key][]float64)

	for _, res := range results {
		k := key{scheme: res.Scheme, carrier: res.Carrier}
		sum, ok := series[k]
		if !ok {
			sum = &Summary{Scheme: res.Scheme, Carrier: res.Carrier}
			series[k] = sum
			order = append(order, k)
		}
		if res.Err != nil {
			sum.Failures++

			continue
		}
		sum.Passes++
		sum.BitErrors += res.BitErrors
		sum.TotalBits += res.TotalBits
		bers[k] = append(bers[k], res.BER)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		sum := series[k]
		if len(bers[k]) > 0 {
			sum.MeanBER = stat.Mean(bers[k], nil)
		}
		out = append(out, *sum)
	}

	return out
}
