package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

func TestMSEGradient(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	actual := mat.NewVecDense(2, []float64{1, 2})
	predicted := mat.NewVecDense(2, []float64{0, 0})

	g, err := MSEGradient(X, actual, predicted)
	require.NoError(t, err)

	// residual = [1, 2]
	assert.InDelta(t, -3, g.Bias, 1e-12)
	assert.InDeltaSlice(t, []float64{-5}, g.Weights, 1e-12)
}

func TestMSEGradient_ZeroAtStationaryPoint(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 0,
		2, 1,
		3, -1,
		4, 2,
	})
	w := []float64{3, -0.5}
	const b = 1

	y, err := Forward(X, w, b)
	require.NoError(t, err)

	g, err := MSEGradient(X, y, y)
	require.NoError(t, err)
	assert.InDelta(t, 0, g.Bias, 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0}, g.Weights, 1e-12)
}

func TestMSEGradient_SampleMismatch(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := MSEGradient(X, mat.NewVecDense(2, nil), mat.NewVecDense(3, nil))
	assert.True(t, errors.IsShapeMismatch(err))

	_, err = MSEGradient(X, mat.NewVecDense(3, nil), mat.NewVecDense(4, nil))
	assert.True(t, errors.IsShapeMismatch(err))

	_, err = MSEGradient(X, nil, mat.NewVecDense(3, nil))
	assert.True(t, errors.IsShapeMismatch(err))
}
