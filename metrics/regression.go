// Package metrics は回帰モデルの評価指標を提供する。
// MSE は学習時の損失としても使われる。
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// residuals は yTrue - yPred を返す。空入力と長さの不一致を検査する。
func residuals(op string, yTrue, yPred *mat.VecDense) ([]float64, error) {
	if yTrue == nil || yPred == nil || yTrue.IsEmpty() {
		return nil, errors.NewEmptyInputError(op)
	}
	n := yTrue.Len()
	if yPred.IsEmpty() || yPred.Len() != n {
		got := 0
		if !yPred.IsEmpty() {
			got = yPred.Len()
		}
		return nil, errors.NewDimensionError(op, n, got, 0)
	}

	diff := make([]float64, n)
	for i := range diff {
		diff[i] = yTrue.AtVec(i) - yPred.AtVec(i)
	}
	return diff, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
//
//	MSE = (1/n) * Σ(yTrue - yPred)²
//
// 引数を入れ替えても結果は同じ。
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residuals("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// MSEMatrix は行列形式（n×1）の入力に対してMSEを計算する
func MSEMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	t, err := columnVec("MSEMatrix", yTrue)
	if err != nil {
		return 0, err
	}
	p, err := columnVec("MSEMatrix", yPred)
	if err != nil {
		return 0, err
	}
	return MSE(t, p)
}

// columnVec は n×1 の行列を VecDense に変換する
func columnVec(op string, m mat.Matrix) (*mat.VecDense, error) {
	if m == nil {
		return nil, errors.NewEmptyInputError(op)
	}
	if v, ok := m.(*mat.VecDense); ok {
		if v.IsEmpty() {
			return nil, errors.NewEmptyInputError(op)
		}
		return v, nil
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return nil, errors.NewEmptyInputError(op)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewEmptyInputError(op)
	}
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	return mat.NewVecDense(r, mat.Col(nil, 0, m)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residuals("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return floats.Norm(diff, 1) / float64(len(diff)), nil
}

// R2Score は決定係数（R²）を計算する
//
//	R² = 1 - RSS/TSS
//
// yTrue の分散がゼロの場合は ValidationError を返す。
func R2Score(yTrue, yPred *mat.VecDense) (float64, error) {
	diff, err := residuals("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	truth := mat.Col(nil, 0, yTrue)
	mean := stat.Mean(truth, nil)
	var tss float64
	for _, v := range truth {
		tss += (v - mean) * (v - mean)
	}
	if tss == 0 {
		return 0, errors.NewValidationError("yTrue", "total sum of squares is zero", mean)
	}

	rss := floats.Dot(diff, diff)
	return 1 - rss/tss, nil
}
