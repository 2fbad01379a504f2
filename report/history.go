// Package report provides Reporter implementations that record, log and
// chart the per-epoch training loss.
package report

import (
	"math"
)

// History records every (epoch, loss) pair it receives.
type History struct {
	epochs []int
	losses []float64
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Report appends one epoch.
func (h *History) Report(epoch int, loss float64) {
	h.epochs = append(h.epochs, epoch)
	h.losses = append(h.losses, loss)
}

// Losses returns a copy of the recorded losses in arrival order.
func (h *History) Losses() []float64 {
	return append([]float64(nil), h.losses...)
}

// Epochs returns a copy of the recorded epoch indices.
func (h *History) Epochs() []int {
	return append([]int(nil), h.epochs...)
}

// Last returns the most recent loss, or false if nothing was recorded.
func (h *History) Last() (float64, bool) {
	if len(h.losses) == 0 {
		return 0, false
	}
	return h.losses[len(h.losses)-1], true
}

// Len returns the number of recorded epochs.
func (h *History) Len() int {
	return len(h.losses)
}

// Reset drops all recorded epochs.
func (h *History) Reset() {
	h.epochs = h.epochs[:0]
	h.losses = h.losses[:0]
}

// finite returns the epochs whose loss can be drawn.
func (h *History) finite() ([]int, []float64) {
	epochs := make([]int, 0, len(h.epochs))
	losses := make([]float64, 0, len(h.losses))
	for i, l := range h.losses {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}
		epochs = append(epochs, h.epochs[i])
		losses = append(losses, l)
	}
	return epochs, losses
}
