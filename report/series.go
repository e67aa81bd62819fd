package report

import (
	"math"

	"github.com/thomazritter/simulacao-redes2/linksim"
	"github.com/thomazritter/simulacao-redes2/modem"
)

// series is one plotted or tabulated line: every result of one scheme on
// one link stage, in sweep order.
type series struct {
	scheme  modem.Scheme
	carrier bool
	points  []linksim.Result
}

// label names the series for table headers and plot legends. With dual
// stages in play the original report suffixes _sem (baseband) and _com
// (passband) to keep the runs side by side.
func (s series) label(dual bool) string {
	name := s.scheme.String()
	if !dual {
		return name
	}
	if s.carrier {
		return name + "_com"
	}

	return name + "_sem"
}

// legend names the series for the plot legend.
func (s series) legend() string {
	if s.carrier {
		return s.scheme.String() + " (com portadora)"
	}

	return s.scheme.String()
}

// collectSeries splits results into per-(scheme, stage) series, keeping
// first-appearance order, and reports whether both stages occur.
func collectSeries(results []linksim.Result) (groups []series, dual bool) {
	type key struct {
		scheme  modem.Scheme
		carrier bool
	}

	index := make(map[key]int)
	sawCarrier, sawBaseband := false, false
	for _, res := range results {
		k := key{scheme: res.Scheme, carrier: res.Carrier}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, series{scheme: res.Scheme, carrier: res.Carrier})
		}
		groups[i].points = append(groups[i].points, res)

		if res.Carrier {
			sawCarrier = true
		} else {
			sawBaseband = true
		}
	}

	return groups, sawCarrier && sawBaseband
}

// eqSNR compares sweep points, treating NaN as equal to NaN so failed
// passes still land on one table row.
func eqSNR(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}

	return a == b
}

// snrRows returns the distinct SNR values across all series, in
// first-appearance order.
func snrRows(groups []series) []float64 {
	var rows []float64
	for _, s := range groups {
		for _, p := range s.points {
			found := false
			for _, r := range rows {
				if eqSNR(r, p.SNRdB) {
					found = true

					break
				}
			}
			if !found {
				rows = append(rows, p.SNRdB)
			}
		}
	}

	return rows
}

// at finds the series result for one SNR row.
func (s series) at(snrDB float64) (linksim.Result, bool) {
	for _, p := range s.points {
		if eqSNR(p.SNRdB, snrDB) {
			return p, true
		}
	}

	return linksim.Result{}, false
}
