package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// Normalize は各要素を (x - means[j]) / stds[j] に変換した新しい行列を返す。
// 入力の行列は変更しない。
//
// stds にゼロが含まれる場合、その列は ±Inf または NaN になる。
// ゼロ分散の扱いは StandardScaler が行う。
func Normalize(X mat.Matrix, means, stds []float64) (*mat.Dense, error) {
	r, c, err := dims("Normalize", X)
	if err != nil {
		return nil, err
	}
	if len(means) != c {
		return nil, errors.NewDimensionError("Normalize", len(means), c, 1)
	}
	if len(stds) != c {
		return nil, errors.NewDimensionError("Normalize", len(stds), c, 1)
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return (v - means[j]) / stds[j]
	}, X)
	return result, nil
}
