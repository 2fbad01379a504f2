package log

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gdlinear/pkg/errors"
)

func TestTestLogger_Levels(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationFit)
	testLogger.Warn("warning message", ErrorCodeKey, ErrorNumerical)
	testLogger.Error("error message", fmt.Errorf("boom"), ErrorCodeKey, ErrorDimensionMismatch)

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.ContainsField("key1", "value1") {
		t.Error("Expected field key1=value1 not found")
	}
	if !testLogger.ContainsField("number", 42.0) {
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField(ErrAttrKey, "boom") {
		t.Error("Expected leading error to be logged under the error key")
	}
}

func TestTestLogger_With(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(
		ModelNameKey, "GDRegression",
		EstimatorIDKey, "gd-001",
	)
	contextLogger.Info("model fitted", OperationKey, OperationFit, SamplesKey, 4)

	if !testLogger.ContainsField(ModelNameKey, "GDRegression") {
		t.Error("Model name context not found")
	}
	if !testLogger.ContainsField(EstimatorIDKey, "gd-001") {
		t.Error("Estimator ID context not found")
	}
	if !testLogger.ContainsField(SamplesKey, 4.0) {
		t.Error("Samples field not found")
	}
}

func TestTestLogger_Enabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should be enabled for Info level")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}
}

func TestTestLogger_Clear(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelInfo)
	testLogger.Info("first")
	testLogger.Clear()
	if buffer.Len() != 0 {
		t.Errorf("expected empty buffer after Clear, got %q", buffer.String())
	}
}

func TestSlogLogger_ErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupLoggerTo(&buf, "debug"); err != nil {
		t.Fatalf("SetupLoggerTo: %v", err)
	}

	logger := GetLogger().With(ModelNameKey, "GDRegression")
	logger.Error("predict failed", errors.NewDimensionError("GDRegression.Predict", 2, 3, 1), OperationKey, OperationPredict)

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("failed to decode %q: %v", buf.String(), err)
	}
	if entry["severity"] != "ERROR" {
		t.Errorf("severity = %v, want ERROR", entry["severity"])
	}
	if entry["message"] != "predict failed" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[ModelNameKey] != "GDRegression" {
		t.Errorf("%s = %v", ModelNameKey, entry[ModelNameKey])
	}
	if _, ok := entry[ErrAttrKey]; !ok {
		t.Error("expected error attribute")
	}
	if !GetLogger().Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"debug", false},
		{"INFO", false},
		{"warn", false},
		{"error", false},
		{"", false},
		{"verbose", true},
	}
	for _, tt := range tests {
		_, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestRouteWarningsToZerolog(t *testing.T) {
	var sb strings.Builder
	RouteWarningsToZerolog(zerolog.New(&sb))
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewNumericalInstabilityError("train", []float64{1}, 12))

	out := sb.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got %s", out)
	}
	if !strings.Contains(out, `"iteration":12`) {
		t.Errorf("expected embedded iteration field, got %s", out)
	}
}

func BenchmarkTestLogger(b *testing.B) {
	testLogger, _ := NewTestLogger(LevelInfo)
	contextLogger := testLogger.With(ModelNameKey, "GDRegression")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		contextLogger.Info("benchmark message", EpochKey, i, LossKey, 0.5)
	}
}
