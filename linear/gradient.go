package linear

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/core/model"
	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// MSEGradient は平均二乗誤差の各パラメータに関する偏微分を計算する
//
//	bias = (-2/n) * Σ(actual - predicted)
//	w[j] = (-2/n) * Σ X[i][j] * (actual - predicted)
//
// 重みの勾配は Xᵀ·residual としてゼロ初期化した新しいベクトルに計算する。
func MSEGradient(X mat.Matrix, actual, predicted *mat.VecDense) (model.Gradients, error) {
	const op = "MSEGradient"
	r, c, err := matrixDims(op, X)
	if err != nil {
		return model.Gradients{}, err
	}
	if actual == nil || actual.IsEmpty() || actual.Len() != r {
		return model.Gradients{}, errors.NewDimensionError(op, r, vecLen(actual), 0)
	}
	if predicted == nil || predicted.IsEmpty() || predicted.Len() != r {
		return model.Gradients{}, errors.NewDimensionError(op, r, vecLen(predicted), 0)
	}

	residual := mat.NewVecDense(r, nil)
	residual.SubVec(actual, predicted)

	scale := -2 / float64(r)
	grad := mat.NewVecDense(c, nil)
	grad.MulVec(X.T(), residual)
	grad.ScaleVec(scale, grad)

	return model.Gradients{
		Weights: grad.RawVector().Data,
		Bias:    scale * floats.Sum(residual.RawVector().Data),
	}, nil
}

func vecLen(v *mat.VecDense) int {
	if v == nil || v.IsEmpty() {
		return 0
	}
	return v.Len()
}
