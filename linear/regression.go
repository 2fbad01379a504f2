// Package linear はフルバッチ勾配降下法による多変量線形回帰を提供する。
package linear

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/gdlinear/core/model"
	"github.com/YuminosukeSato/gdlinear/metrics"
	"github.com/YuminosukeSato/gdlinear/pkg/errors"
	"github.com/YuminosukeSato/gdlinear/pkg/log"
	"github.com/YuminosukeSato/gdlinear/preprocessing"
)

const modelName = "GDRegression"

var _ model.IterativeRegressor = (*GDRegression)(nil)

// GDRegression は勾配降下法で学習する線形回帰モデル
//
// Fit で特徴量の統計量を固定し、標準化したデータと初期パラメータを保持する。
// Train は指定したエポック数だけ予測→損失→勾配→更新を繰り返す。
// Predict は Fit 時の統計量で入力を標準化してから予測する。
//
// 並行利用は安全ではない。呼び出し側で直列化すること。
type GDRegression struct {
	state  *model.StateManager
	scaler *preprocessing.StandardScaler

	// 標準化済みの学習データ
	xNorm mat.Matrix
	y     *mat.VecDense

	params model.Params

	rng       *rand.Rand
	initScale float64
	reporter  Reporter
	logger    log.Logger
	id        string
}

// NewGDRegression は新しいGDRegressionを作成する
//
// 使用例:
//
//	reg := linear.NewGDRegression(linear.WithSeed(42))
//	if err := reg.Fit(X, y); err != nil { ... }
//	if err := reg.Train(1000, 0.01); err != nil { ... }
//	yPred, err := reg.Predict(XTest)
func NewGDRegression(opts ...Option) *GDRegression {
	cfg := config{initScale: DefaultInitScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.reporter == nil {
		cfg.reporter = nopReporter{}
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}

	id := uuid.NewString()
	logger := cfg.logger.With(log.ModelNameKey, modelName, log.EstimatorIDKey, id)
	if cfg.seed != nil {
		logger = logger.With(log.RandomSeedKey, *cfg.seed)
	}

	return &GDRegression{
		state:     model.NewStateManager(),
		rng:       cfg.rng,
		initScale: cfg.initScale,
		reporter:  cfg.reporter,
		logger:    logger,
		id:        id,
	}
}

// Fit は特徴量の統計量を計算し、標準化した学習データを保持して
// 重みを [-initScale, initScale) の一様乱数、バイアスを0で初期化する
//
// パラメータ:
//   - X: 特徴量 (n_samples × n_features の行列)
//   - y: ラベル (n_samples × 1 の行列または *mat.VecDense)
//
// 戻り値:
//   - error: 空の入力は EmptyInput、行数の不一致や y が1列でない場合は ShapeMismatch
//
// 再度呼び出すと、以前の学習結果を破棄して最初から学習し直す。
func (g *GDRegression) Fit(X, y mat.Matrix) (err error) {
	defer errors.Recover(&err, "GDRegression.Fit")
	start := time.Now()

	r, c, err := matrixDims("GDRegression.Fit", X)
	if err != nil {
		return err
	}
	yv, err := labelVector("GDRegression.Fit", y, r)
	if err != nil {
		return err
	}

	scaler := preprocessing.NewStandardScaler()
	xNorm, err := scaler.FitTransform(X)
	if err != nil {
		return err
	}

	g.scaler = scaler
	g.xNorm = xNorm
	g.y = yv
	g.params = model.InitParams(c, g.rng, g.initScale)
	g.state.SetFitted(c, r)

	g.logger.Info("model fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.DegenerateKey, scaler.Degenerate(),
		log.InitScaleKey, g.initScale,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Train はフルバッチ勾配降下法を epochs 回実行する
//
// 各エポックで現在のパラメータによる予測、損失（MSE）、勾配を計算し、
// すべてのパラメータを同時に更新する。報告される損失は更新前の予測に対するもの。
// epochs が0の場合は何もしない。呼び出しごとにエポックは累積する。
//
// 損失が NaN や Inf になった場合は NumericalInstabilityError を一度だけ
// errors.Warn で通知し、学習は最後まで続ける。
func (g *GDRegression) Train(epochs int, learningRate float64) (err error) {
	defer errors.Recover(&err, "GDRegression.Train")

	if err := g.state.RequireFitted(modelName, "Train"); err != nil {
		return err
	}
	if epochs < 0 {
		return errors.NewValidationError("epochs", "must be non-negative", epochs)
	}
	if math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return errors.NewValidationError("learningRate", "must be finite", learningRate)
	}
	if epochs == 0 {
		return nil
	}

	start := time.Now()
	first := g.state.Epochs()
	loss := math.NaN()
	warned := false

	for e := 1; e <= epochs; e++ {
		epoch := first + e

		pred, err := Forward(g.xNorm, g.params.Weights, g.params.Bias)
		if err != nil {
			return err
		}
		loss, err = metrics.MSE(g.y, pred)
		if err != nil {
			return err
		}
		grad, err := MSEGradient(g.xNorm, g.y, pred)
		if err != nil {
			return err
		}
		next, err := g.params.Step(grad, learningRate)
		if err != nil {
			return err
		}
		g.params = next

		if !warned {
			if w := errors.CheckScalar("GDRegression.Train", loss, epoch); w != nil {
				warned = true
				errors.Warn(w)
				g.logger.Warn("loss is not finite",
					log.EpochKey, epoch,
					log.LearningRateKey, learningRate,
					log.ErrorCodeKey, log.ErrorNumerical,
				)
			}
		}
		g.reporter.Report(epoch, loss)
	}
	g.state.AddEpochs(epochs)

	g.logger.Info("training finished",
		log.OperationKey, log.OperationTrain,
		log.EpochsKey, epochs,
		log.EpochKey, g.state.Epochs(),
		log.LearningRateKey, learningRate,
		log.LossKey, floatAttr(loss),
		log.FingerprintKey, fmt.Sprintf("%016x", g.params.Fingerprint()),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は Fit 時の統計量で X を標準化し、n_samples × 1 の予測値を返す
//
// Fit 直後（Train 前）でも呼び出せる。列数が学習時と異なる場合は ShapeMismatch。
func (g *GDRegression) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	defer errors.Recover(&err, "GDRegression.Predict")

	if err := g.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	_, c, err := matrixDims("GDRegression.Predict", X)
	if err != nil {
		return nil, err
	}
	if c != g.NFeatures() {
		return nil, errors.NewDimensionError("GDRegression.Predict", g.NFeatures(), c, 1)
	}

	xNorm, err := g.scaler.Transform(X)
	if err != nil {
		return nil, err
	}
	pred, err := Forward(xNorm, g.params.Weights, g.params.Bias)
	if err != nil {
		return nil, err
	}
	return pred, nil
}

// Loss は現在のパラメータによる学習データ上の平均二乗誤差を返す
func (g *GDRegression) Loss() (_ float64, err error) {
	defer errors.Recover(&err, "GDRegression.Loss")

	if err := g.state.RequireFitted(modelName, "Loss"); err != nil {
		return 0, err
	}
	pred, err := Forward(g.xNorm, g.params.Weights, g.params.Bias)
	if err != nil {
		return 0, err
	}
	return metrics.MSE(g.y, pred)
}

// Score は決定係数（R²）を計算する
func (g *GDRegression) Score(X, y mat.Matrix) (_ float64, err error) {
	defer errors.Recover(&err, "GDRegression.Score")

	if err := g.state.RequireFitted(modelName, "Score"); err != nil {
		return 0, err
	}
	yPred, err := g.Predict(X)
	if err != nil {
		return 0, err
	}
	r, _ := yPred.Dims()
	yTrue, err := labelVector("GDRegression.Score", y, r)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yTrue, yPred.(*mat.VecDense))
}

// Params は現在のパラメータのコピーを返す
func (g *GDRegression) Params() model.Params {
	return g.params.Clone()
}

// Weights は標準化された特徴量に対する重みのコピーを返す
func (g *GDRegression) Weights() []float64 {
	return g.params.Clone().Weights
}

// Bias はバイアス（切片）を返す
func (g *GDRegression) Bias() float64 {
	return g.params.Bias
}

// Means は Fit 時に計算した各特徴量の平均を返す
func (g *GDRegression) Means() []float64 {
	if g.scaler == nil {
		return nil
	}
	return append([]float64(nil), g.scaler.Mean...)
}

// StdDevs は Fit 時に計算した各特徴量の母標準偏差を返す
func (g *GDRegression) StdDevs() []float64 {
	if g.scaler == nil {
		return nil
	}
	return append([]float64(nil), g.scaler.StdDev...)
}

// NFeatures は学習時の特徴量の数を返す
func (g *GDRegression) NFeatures() int {
	n, _ := g.state.Dimensions()
	return n
}

// EpochsTrained は直近の Fit 以降に実行したエポック数を返す
func (g *GDRegression) EpochsTrained() int {
	return g.state.Epochs()
}

// State はモデルのライフサイクル状態を返す
func (g *GDRegression) State() model.State {
	return g.state.State()
}

// ID はこのインスタンスの識別子を返す
func (g *GDRegression) ID() string {
	return g.id
}

func (g *GDRegression) String() string {
	if !g.state.IsFitted() {
		return "GDRegression()"
	}
	return fmt.Sprintf("GDRegression(n_features=%d, epochs=%d, state=%s)",
		g.NFeatures(), g.EpochsTrained(), g.State())
}

// floatAttr は JSON で表現できない値を文字列にする
func floatAttr(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return v
}
