package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// matrixDims returns the shape of X or an EmptyInput error.
func matrixDims(op string, X mat.Matrix) (int, int, error) {
	if X == nil {
		return 0, 0, errors.NewEmptyInputError(op)
	}
	switch m := X.(type) {
	case *mat.Dense:
		if m == nil || m.IsEmpty() {
			return 0, 0, errors.NewEmptyInputError(op)
		}
	case *mat.VecDense:
		if m == nil || m.IsEmpty() {
			return 0, 0, errors.NewEmptyInputError(op)
		}
	}
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, errors.NewEmptyInputError(op)
	}
	return r, c, nil
}

// labelVector converts y to a vector of length n. y must be a single column.
func labelVector(op string, y mat.Matrix, n int) (*mat.VecDense, error) {
	r, c, err := matrixDims(op, y)
	if err != nil {
		return nil, err
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	if r != n {
		return nil, errors.NewDimensionError(op, n, r, 0)
	}
	return mat.NewVecDense(r, mat.Col(nil, 0, y)), nil
}
