package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRecover_WithPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "GDRegression.Fit")
		panic("index out of range")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !errors.As(err, &panicErr) {
		t.Fatalf("Expected PanicError, got %T", err)
	}
	if panicErr.Operation != "GDRegression.Fit" {
		t.Errorf("Expected operation 'GDRegression.Fit', got '%s'", panicErr.Operation)
	}
	if panicErr.StackTrace == "" {
		t.Error("Expected non-empty stack trace")
	}
	if want := "panic in GDRegression.Fit: index out of range"; panicErr.Error() != want {
		t.Errorf("Error() = %q, want %q", panicErr.Error(), want)
	}
}

func TestRecover_WithoutPanic(t *testing.T) {
	testFunc := func() (err error) {
		defer Recover(&err, "GDRegression.Train")
		return nil
	}

	if err := testFunc(); err != nil {
		t.Fatalf("Expected no error when no panic occurs, got: %v", err)
	}
}

func TestRecover_WithExistingError(t *testing.T) {
	originalErr := fmt.Errorf("original error")

	testFunc := func() (err error) {
		defer Recover(&err, "GDRegression.Predict")
		err = originalErr
		panic("panic after error")
	}

	err := testFunc()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "panic in GDRegression.Predict") {
		t.Errorf("Error message should contain panic info: %s", msg)
	}
	if !strings.Contains(msg, "original error") {
		t.Errorf("Error message should contain original error: %s", msg)
	}
	if !errors.Is(err, originalErr) {
		t.Error("Should be able to identify original error with errors.Is")
	}
}

func TestRecover_ErrorPanicUnwraps(t *testing.T) {
	sentinel := fmt.Errorf("mat: dimension mismatch")

	err := SafeExecute("Forward", func() error {
		panic(sentinel)
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("Expected panic error value to be reachable through errors.Is, got %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if err := SafeExecute("op", func() error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("function error is passed through", func(t *testing.T) {
		originalErr := fmt.Errorf("function error")
		if err := SafeExecute("op", func() error { return originalErr }); err != originalErr {
			t.Fatalf("Expected original error, got: %v", err)
		}
	})

	t.Run("panic values", func(t *testing.T) {
		testCases := []struct {
			name     string
			value    interface{}
			expected string
		}{
			{"string", "unexpected nil pointer", "panic in op: unexpected nil pointer"},
			{"int", 42, "panic in op: 42"},
			{"nil", nil, "panic in op: panic called with nil argument"},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				err := SafeExecute("op", func() error { panic(tc.value) })
				var panicErr *PanicError
				if !errors.As(err, &panicErr) {
					t.Fatalf("Expected PanicError, got %T", err)
				}
				if err.Error() != tc.expected {
					t.Errorf("Error() = %q, want %q", err.Error(), tc.expected)
				}
			})
		}
	})
}

func TestPanicError_String(t *testing.T) {
	panicErr := NewPanicError("TestOp", "test value")

	str := panicErr.String()
	if !strings.Contains(str, "Stack trace:") {
		t.Error("String() should include stack trace information")
	}
	if !strings.Contains(str, "panic in TestOp: test value") {
		t.Error("String() should include basic error information")
	}
	if panicErr.Unwrap() != nil {
		t.Error("Unwrap() should return nil for non-error panic values")
	}
}

func BenchmarkRecover_NoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		func() (err error) {
			defer Recover(&err, "BenchmarkOp")
			return nil
		}()
	}
}
