package testutil

import (
	"errors"
	"math"
	"testing"

	apperrors "finhealth/internal/errors"
)

// amountTolerance is how far two money amounts may differ and still match.
const amountTolerance = 0.005

// AssertAppError fails unless err is, or wraps, an *AppError with code.
func AssertAppError(t *testing.T, err error, code string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("want %s, got nil", code)
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("want %s, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Errorf("code = %s (%q), want %s", appErr.Code, appErr.Message, code)
	}
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertAmount compares a money figure to the cent.
func AssertAmount(t *testing.T, field string, got, want float64) {
	t.Helper()

	if math.IsNaN(got) || math.Abs(got-want) > amountTolerance {
		t.Errorf("%s = %.4f, want %.2f", field, got, want)
	}
}
