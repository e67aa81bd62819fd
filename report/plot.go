package report

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/thomazritter/simulacao-redes2/linksim"
)

// SavePlot renders the BER curves into an image file; the extension
// picks the format (.png, .svg, .pdf, ...). The BER axis is logarithmic
// with zero-BER points dropped, unless the whole sweep is error-free, in
// which case the axis stays linear so the zero line remains visible.
func SavePlot(path string, results []linksim.Result) error {
	groups, _ := collectSeries(results)

	anyPositive := false
	for _, s := range groups {
		for _, p := range s.points {
			if p.Err == nil && p.BER > 0 {
				anyPositive = true
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Curva BER x SNR"
	p.X.Label.Text = "SNR (dB)"
	p.Y.Label.Text = "BER"
	p.Add(plotter.NewGrid())
	if anyPositive {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	var lines []interface{}
	for _, s := range groups {
		var xys plotter.XYs
		for _, point := range s.points {
			if point.Err != nil || math.IsNaN(point.SNRdB) {
				continue
			}
			if anyPositive && point.BER <= 0 {
				continue // log axis cannot carry zero
			}
			xys = append(xys, plotter.XY{X: point.SNRdB, Y: point.BER})
		}
		if len(xys) == 0 {
			continue
		}
		lines = append(lines, s.legend(), xys)
	}

	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return err
	}

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
