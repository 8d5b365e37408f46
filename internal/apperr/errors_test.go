package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/site-pager/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("value is required")

	if err.Error() != "value is required" {
		t.Errorf("expected 'value is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid number", inner)

	if err.Error() != "invalid number: parse failed" {
		t.Errorf("expected 'invalid number: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("page must be a number")

	wrapped := fmt.Errorf("failed to read query: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "page must be a number" {
		t.Errorf("expected 'page must be a number', got %q", ve.Message)
	}
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("handler error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
}

func TestNewFieldValidation(t *testing.T) {
	inner := fmt.Errorf("strconv.Atoi: parsing \"x\": invalid syntax")
	err := apperr.NewFieldValidation("total", "must be an integer", inner)

	want := "total: must be an integer: " + inner.Error()
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if err.Field != "total" {
		t.Errorf("expected field 'total', got %q", err.Field)
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}
