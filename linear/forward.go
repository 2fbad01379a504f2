package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// Forward は X·w + b を計算し、サンプルごとの予測値を返す。
// 学習中の予測と推論時の予測はどちらもこの関数を通る。
//
// X が空の場合は EmptyInput、列数が len(weights) と異なる場合は ShapeMismatch を返す。
func Forward(X mat.Matrix, weights []float64, bias float64) (*mat.VecDense, error) {
	r, c, err := matrixDims("Forward", X)
	if err != nil {
		return nil, err
	}
	if len(weights) != c {
		return nil, errors.NewDimensionError("Forward", len(weights), c, 1)
	}

	out := mat.NewVecDense(r, nil)
	out.MulVec(X, mat.NewVecDense(c, weights))
	floats.AddConst(bias, out.RawVector().Data)
	return out, nil
}
