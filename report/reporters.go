package report

import (
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gdlinear/linear"
	"github.com/YuminosukeSato/gdlinear/pkg/log"
)

type zerologReporter struct {
	zl zerolog.Logger
}

// NewZerologReporter writes one info event per epoch to zl.
func NewZerologReporter(zl zerolog.Logger) linear.Reporter {
	return zerologReporter{zl: zl}
}

func (z zerologReporter) Report(epoch int, loss float64) {
	z.zl.Info().
		Int(log.EpochKey, epoch).
		Float64(log.LossKey, loss).
		Msg("epoch")
}

// Every forwards only epochs that are a multiple of n. n <= 1 forwards all.
func Every(n int, r linear.Reporter) linear.Reporter {
	if n <= 1 {
		return r
	}
	return linear.ReporterFunc(func(epoch int, loss float64) {
		if epoch%n == 0 {
			r.Report(epoch, loss)
		}
	})
}

// Multi forwards each epoch to every reporter in order. nil entries are skipped.
func Multi(rs ...linear.Reporter) linear.Reporter {
	sinks := make([]linear.Reporter, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			sinks = append(sinks, r)
		}
	}
	return linear.ReporterFunc(func(epoch int, loss float64) {
		for _, r := range sinks {
			r.Report(epoch, loss)
		}
	})
}
