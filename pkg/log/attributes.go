// Package log defines standard attribute keys for regression training and inference.
//
// The keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so that log lines from fit, train and predict can be
// filtered and joined by estimator ID.

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model, e.g. "GDRegression".
	ModelNameKey = "model.name"

	// EstimatorIDKey is the unique identifier of one engine instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed: "fit", "train", "predict".
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the model lifecycle.
	PhaseKey = "ml.phase"

	// FingerprintKey records the xxhash fingerprint of the model parameters.
	FingerprintKey = "model.fingerprint"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples (rows).
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns).
	FeaturesKey = "data.features"

	// DegenerateKey lists the feature columns with zero variance.
	DegenerateKey = "data.degenerate_columns"

	// SourceKey names where a dataset was read from.
	SourceKey = "data.source"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// LossKey records the mean squared error during training or evaluation.
	LossKey = "metrics.loss"

	// RMSEKey records the root mean squared error.
	RMSEKey = "metrics.rmse"

	// MAEKey records the mean absolute error.
	MAEKey = "metrics.mae"

	// R2ScoreKey records the coefficient of determination.
	R2ScoreKey = "metrics.r2_score"

	// EpochKey records the current (cumulative) epoch number.
	EpochKey = "training.epoch"

	// EpochsKey records the number of epochs requested for one Train call.
	EpochsKey = "training.epochs"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"
)

// Hyperparameters and Configuration
const (
	// LearningRateKey records the learning rate.
	LearningRateKey = "hyperparams.learning_rate"

	// InitScaleKey records the half-width of the weight initialization interval.
	InitScaleKey = "hyperparams.init_scale"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"

	// TestFractionKey records the share of samples held out for testing.
	TestFractionKey = "config.test_fraction"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationTrain   = "train"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationLoad    = "load"
	OperationSplit   = "split"

	PhaseTraining      = "training"
	PhaseTesting       = "testing"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorNumerical         = "NUMERICAL_INSTABILITY"
)
