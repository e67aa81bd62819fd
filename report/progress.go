package report

import (
	"github.com/charmbracelet/log"

	"github.com/thomazritter/simulacao-redes2/linksim"
)

// Progress returns an observer that logs every finished pass: counts and
// recovered text for completed passes, the cause for failed ones. Long
// recovered texts are clipped to keep log lines readable.
func Progress(logger *log.Logger) linksim.Observer {
	return func(r linksim.Result) {
		stage := "baseband"
		if r.Carrier {
			stage = "passband"
		}

		if r.Err != nil {
			logger.Error("pass failed",
				"scheme", r.Scheme.String(),
				"stage", stage,
				"snr_db", r.SNRdB,
				"err", r.Err,
			)

			return
		}

		text := r.Text
		if runes := []rune(text); len(runes) > 50 {
			text = string(runes[:50]) + "..."
		}
		logger.Info("pass complete",
			"scheme", r.Scheme.String(),
			"stage", stage,
			"snr_db", r.SNRdB,
			"errors", r.BitErrors,
			"bits", r.TotalBits,
			"ber", r.BER,
			"text", text,
		)
	}
}
