package dataset

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// Split holds the two partitions produced by TrainTestSplit. XTest and
// YTest are nil when the test partition is empty.
type Split struct {
	XTrain *mat.Dense
	YTrain *mat.VecDense
	XTest  *mat.Dense
	YTest  *mat.VecDense
}

// TrainTestSplit keeps the first round((1-testFraction)*n) samples for
// training and the rest for testing. Order is preserved; there is no
// shuffling. testFraction must lie in [0, 1).
func TrainTestSplit(X mat.Matrix, y mat.Matrix, testFraction float64) (*Split, error) {
	const op = "TrainTestSplit"
	if math.IsNaN(testFraction) || testFraction < 0 || testFraction >= 1 {
		return nil, errors.NewValidationError("testFraction", "must be in [0, 1)", testFraction)
	}
	if isEmpty(X) || isEmpty(y) {
		return nil, errors.NewEmptyInputError(op)
	}
	n, c := X.Dims()
	ny, cy := y.Dims()
	if n == 0 || c == 0 {
		return nil, errors.NewEmptyInputError(op)
	}
	if cy != 1 {
		return nil, errors.NewDimensionError(op, 1, cy, 1)
	}
	if ny != n {
		return nil, errors.NewDimensionError(op, n, ny, 0)
	}

	nTrain := int(math.Round((1 - testFraction) * float64(n)))
	if nTrain == 0 {
		return nil, errors.Wrapf(errors.NewEmptyInputError(op), "no training samples for testFraction %g", testFraction)
	}

	labels := mat.Col(nil, 0, y)
	s := &Split{
		XTrain: rowRange(X, 0, nTrain),
		YTrain: mat.NewVecDense(nTrain, labels[:nTrain:nTrain]),
	}
	if nTrain < n {
		s.XTest = rowRange(X, nTrain, n)
		s.YTest = mat.NewVecDense(n-nTrain, labels[nTrain:])
	}
	return s, nil
}

// isEmpty reports nil interfaces, typed-nil gonum values and zero-sized matrices.
func isEmpty(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil || v.IsEmpty()
	case *mat.VecDense:
		return v == nil || v.IsEmpty()
	}
	return false
}

// rowRange copies rows [from, to) of X into a new matrix.
func rowRange(X mat.Matrix, from, to int) *mat.Dense {
	d, ok := X.(*mat.Dense)
	if !ok {
		d = mat.DenseCopyOf(X)
	}
	_, c := d.Dims()
	return mat.DenseCopyOf(d.Slice(from, to, 0, c))
}
