// Package model provides the interfaces, lifecycle state and parameter types
// shared by the regression engine and its collaborators.
package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is implemented by models that learn from a feature matrix and a label column.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor is implemented by models that produce one prediction per sample.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Transformer is implemented by preprocessing steps with frozen, fit-time statistics.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (mat.Matrix, error)
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the coefficient of determination R^2 of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// IterativeRegressor is a regressor trained by repeated full-batch passes.
// Train may be called any number of times after Fit; parameters accumulate.
type IterativeRegressor interface {
	Fitter
	Predictor
	Scorer
	Train(epochs int, learningRate float64) error
	Params() Params
}
