package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

func TestForward(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, 2,
		0, 0,
		-1, 4,
	})
	got, err := Forward(X, []float64{0.5, -1}, 3)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1.5, 3, -1.5}, got.RawVector().Data, 1e-12)
}

func TestForward_Linearity(t *testing.T) {
	x1 := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	x2 := mat.NewDense(2, 3, []float64{-2, 0.5, 1, 7, -3, 0})
	w := []float64{0.3, -1.2, 2}
	const b = 1.5

	var sum mat.Dense
	sum.Add(x1, x2)

	p1, err := Forward(x1, w, b)
	require.NoError(t, err)
	p2, err := Forward(x2, w, b)
	require.NoError(t, err)
	pSum, err := Forward(&sum, w, b)
	require.NoError(t, err)

	// f(x1 + x2) = f(x1) + f(x2) - b
	for i := 0; i < 2; i++ {
		assert.InDelta(t, p1.AtVec(i)+p2.AtVec(i)-b, pSum.AtVec(i), 1e-12)
	}

	// f(x; αw, 0) = α f(x; w, 0)
	scaled := []float64{0.9, -3.6, 6}
	q, err := Forward(x1, w, 0)
	require.NoError(t, err)
	qScaled, err := Forward(x1, scaled, 0)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, 3*q.AtVec(i), qScaled.AtVec(i), 1e-12)
	}
}

func TestForward_Errors(t *testing.T) {
	_, err := Forward(mat.NewDense(2, 2, nil), []float64{1, 2, 3}, 0)
	assert.True(t, errors.IsShapeMismatch(err))

	_, err = Forward(&mat.Dense{}, nil, 0)
	assert.True(t, errors.IsEmptyInput(err))

	_, err = Forward(nil, []float64{1}, 0)
	assert.True(t, errors.IsEmptyInput(err))
}
