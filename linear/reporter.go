package linear

// Reporter receives the training loss once per epoch. epoch counts from 1
// and keeps increasing across Train calls until the next Fit.
type Reporter interface {
	Report(epoch int, loss float64)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(epoch int, loss float64)

// Report calls f(epoch, loss).
func (f ReporterFunc) Report(epoch int, loss float64) { f(epoch, loss) }

type nopReporter struct{}

func (nopReporter) Report(int, float64) {}
