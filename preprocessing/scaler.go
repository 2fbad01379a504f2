package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/core/model"
	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

// degenerateRelStd 以下の相対標準偏差（std / max(1, max|x_j|)）は分散ゼロとみなす。
// 定数列で生じる丸め誤差だけを吸収する大きさ。
const degenerateRelStd = 1e-12

var _ model.Transformer = (*StandardScaler)(nil)

// StandardScaler はデータを平均0、標準偏差1に変換する標準化スケーラー。
// 統計量は Fit 時に一度だけ計算され、以降の Transform はすべて同じ値を使う。
type StandardScaler struct {
	state *model.StateManager

	// Mean は各特徴量の平均値
	Mean []float64

	// StdDev は各特徴量の母標準偏差（補正前）
	StdDev []float64

	// Scale は Transform で割る値。分散ゼロの列は 1.0
	Scale []float64

	// NFeatures は特徴量の数
	NFeatures int

	degenerate []int
}

// NewStandardScaler は新しいStandardScalerを作成する
//
// 使用例:
//
//	scaler := preprocessing.NewStandardScaler()
//	err := scaler.Fit(X)
//	XScaled, err := scaler.Transform(X)
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{state: model.NewStateManager()}
}

// Fit は訓練データから統計情報（平均、標準偏差）を計算する
//
// 標準偏差が 1e-12*max(1, max|x_j|) 以下の列は中心化のみ行い、スケールは 1.0 とする。
// 判定は列の大きさに対する相対値なので、値の小さい列でも変動があれば標準化される。
// そのような列ごとに DegenerateFeatureWarning を errors.Warn で通知する。
func (s *StandardScaler) Fit(X mat.Matrix) error {
	means, stds, err := MeanStd(X)
	if err != nil {
		return errors.Wrap(err, "StandardScaler.Fit")
	}
	r, c := X.Dims()

	s.Mean = means
	s.StdDev = stds
	s.Scale = make([]float64, c)
	s.NFeatures = c
	s.degenerate = s.degenerate[:0]

	col := make([]float64, r)
	for j, std := range stds {
		mat.Col(col, j, X)
		if std <= degenerateRelStd*math.Max(1, floats.Norm(col, math.Inf(1))) {
			s.Scale[j] = 1.0
			s.degenerate = append(s.degenerate, j)
			errors.Warn(errors.NewDegenerateFeatureWarning("StandardScaler.Fit", j, std))
			continue
		}
		s.Scale[j] = std
	}

	s.state.SetFitted(c, r)
	return nil
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.state.RequireFitted("StandardScaler", "Transform"); err != nil {
		return nil, err
	}
	if _, c, err := dims("StandardScaler.Transform", X); err != nil {
		return nil, err
	} else if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}
	return Normalize(X, s.Mean, s.Scale)
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Degenerate は分散ゼロと判定された列のインデックスを返す
func (s *StandardScaler) Degenerate() []int {
	out := make([]int, len(s.degenerate))
	copy(out, s.degenerate)
	return out
}

// IsFitted は Fit 済みかどうかを返す
func (s *StandardScaler) IsFitted() bool {
	return s.state.IsFitted()
}

// String はスケーラーの文字列表現を返す
func (s *StandardScaler) String() string {
	if !s.IsFitted() {
		return "StandardScaler()"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d, degenerate=%v)", s.NFeatures, s.degenerate)
}
