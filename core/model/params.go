package model

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// Params holds the parameters of a linear model: one weight per feature and a bias.
type Params struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// Gradients holds the partial derivatives of the loss with respect to Params.
type Gradients struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// InitParams draws each of nFeatures weights independently and uniformly
// from [-scale, scale) using rng, and sets the bias to exactly zero.
func InitParams(nFeatures int, rng *rand.Rand, scale float64) Params {
	weights := make([]float64, nFeatures)
	for j := range weights {
		weights[j] = (rng.Float64()*2 - 1) * scale
	}
	return Params{Weights: weights, Bias: 0}
}

// Step applies one gradient-descent update and returns the new parameters.
// p is not modified.
func (p Params) Step(g Gradients, rate float64) (Params, error) {
	if len(g.Weights) != len(p.Weights) {
		return Params{}, errors.NewDimensionError("Params.Step", len(p.Weights), len(g.Weights), 1)
	}
	next := Params{
		Weights: make([]float64, len(p.Weights)),
		Bias:    p.Bias - rate*g.Bias,
	}
	for j, w := range p.Weights {
		next.Weights[j] = w - rate*g.Weights[j]
	}
	return next, nil
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	weights := make([]float64, len(p.Weights))
	copy(weights, p.Weights)
	return Params{Weights: weights, Bias: p.Bias}
}

// Validate checks that p has nFeatures weights and only finite values.
func (p Params) Validate(nFeatures int) error {
	if len(p.Weights) != nFeatures {
		return errors.NewDimensionError("Params.Validate", nFeatures, len(p.Weights), 1)
	}
	if err := errors.CheckNumericalStability("Params.Validate", p.Weights, 0); err != nil {
		return err
	}
	return errors.CheckScalar("Params.Validate", p.Bias, 0)
}

// Fingerprint returns an xxhash of the IEEE-754 bits of the weights followed
// by the bias. Two runs with identical parameters have identical fingerprints.
func (p Params) Fingerprint() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, w := range p.Weights {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(w))
		_, _ = h.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(p.Bias))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}
