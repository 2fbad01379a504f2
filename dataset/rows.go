package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// FromRows builds a dense matrix from row slices. Every row must have the
// same, non-zero length.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	const op = "FromRows"
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewEmptyInputError(op)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, errors.NewDimensionError(op, cols, len(row), 1)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}
