package model

import (
	"fmt"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// State is the lifecycle state of an iterative model.
type State int

const (
	// NotFitted means Fit has not been called yet.
	NotFitted State = iota
	// Fitted means statistics and initial parameters exist but no epoch has run.
	Fitted
	// Trained means at least one epoch has run since the last Fit.
	Trained
)

func (s State) String() string {
	switch s {
	case NotFitted:
		return "not_fitted"
	case Fitted:
		return "fitted"
	case Trained:
		return "trained"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StateManager tracks the lifecycle of a model together with the shape of the
// data it was fitted on. It is not safe for concurrent use; the owning model
// is single-threaded.
type StateManager struct {
	state     State
	nFeatures int
	nSamples  int
	epochs    int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// State returns the current lifecycle state.
func (s *StateManager) State() State {
	return s.state
}

// IsFitted reports whether Fit has completed (Fitted or Trained).
func (s *StateManager) IsFitted() bool {
	return s.state != NotFitted
}

// SetFitted records a completed Fit. It resets the epoch counter, so a
// re-fitted model starts over in the Fitted state.
func (s *StateManager) SetFitted(nFeatures, nSamples int) {
	s.state = Fitted
	s.nFeatures = nFeatures
	s.nSamples = nSamples
	s.epochs = 0
}

// AddEpochs records completed epochs. Zero epochs leaves the state untouched.
func (s *StateManager) AddEpochs(n int) {
	if n <= 0 || s.state == NotFitted {
		return
	}
	s.epochs += n
	s.state = Trained
}

// Epochs returns the number of epochs run since the last Fit.
func (s *StateManager) Epochs() int {
	return s.epochs
}

// Reset returns the manager to NotFitted.
func (s *StateManager) Reset() {
	*s = StateManager{}
}

// Dimensions returns the number of features and samples seen during fitting.
func (s *StateManager) Dimensions() (nFeatures, nSamples int) {
	return s.nFeatures, s.nSamples
}

// RequireFitted returns a NotFittedError naming modelName and method if Fit
// has not been called.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
