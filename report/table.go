package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/thomazritter/simulacao-redes2/linksim"
)

// WriteTable renders results as the tab-separated BER table, one row per
// SNR value and one BER column pair (ratio, percent) per series. Failed
// or missing sweep points print as "-".
func WriteTable(w io.Writer, results []linksim.Result) error {
	groups, dual := collectSeries(results)

	header := []string{"SNR (dB)"}
	for _, s := range groups {
		header = append(header, "BER_"+s.label(dual))
	}
	for _, s := range groups {
		header = append(header, "BER_"+s.label(dual)+" (%)")
	}
	if _, err := fmt.Fprintln(w, strings.Join(header, "\t")); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 60)); err != nil {
		return err
	}

	for _, snr := range snrRows(groups) {
		row := []string{fmt.Sprintf("%.1f", snr)}
		for _, s := range groups {
			if res, ok := s.at(snr); ok && res.Err == nil {
				row = append(row, fmt.Sprintf("%.6f", res.BER))
			} else {
				row = append(row, "-")
			}
		}
		for _, s := range groups {
			if res, ok := s.at(snr); ok && res.Err == nil {
				row = append(row, fmt.Sprintf("%.2f%%", res.BER*100))
			} else {
				row = append(row, "-")
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	return nil
}
