// Package preprocessing は特徴量の統計量計算と標準化を提供します。
package preprocessing

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// MeanStd は各列の算術平均と母標準偏差（nで割る）を計算する
//
// パラメータ:
//   - X: データ (n_samples × n_features の行列)
//
// 戻り値:
//   - means: 各列の平均 (長さ n_features)
//   - stds: 各列の母標準偏差 (長さ n_features)。分散ゼロの列は0
//   - error: 空の入力の場合 EmptyInput
func MeanStd(X mat.Matrix) (means, stds []float64, err error) {
	r, c, err := dims("MeanStd", X)
	if err != nil {
		return nil, nil, err
	}

	means = make([]float64, c)
	stds = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		means[j], stds[j] = stat.PopMeanStdDev(col, nil)
	}
	return means, stds, nil
}

// dims は空入力の検査をしてから行列の形状を返す
func dims(op string, X mat.Matrix) (int, int, error) {
	switch m := X.(type) {
	case nil:
		return 0, 0, errors.NewEmptyInputError(op)
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
