package application

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "lastfm.api_key",
			value:     "abc123",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "lastfm.api_key",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "navidrome.api_base",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if !strings.Contains(valErr.Message, "is required") {
					t.Errorf("unexpected message %q", valErr.Message)
				}
			}
		})
	}
}

func TestFormatFieldName(t *testing.T) {
	if got := formatFieldName("lastfm.api_key"); got != "last.fm API key" {
		t.Errorf("unexpected display name %q", got)
	}
	if got := formatFieldName("custom.key"); got != "custom.key" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestValidateUnitInterval(t *testing.T) {
	for _, v := range []float64{0, 0.65, 1} {
		if err := ValidateUnitInterval("graph.match_threshold", v); err != nil {
			t.Errorf("unexpected error for %g: %v", v, err)
		}
	}
	for _, v := range []float64{-0.01, 1.01} {
		if err := ValidateUnitInterval("graph.match_threshold", v); err == nil {
			t.Errorf("expected error for %g", v)
		}
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("expand.fetch_limit", 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePositive("expand.fetch_limit", 0); err == nil {
		t.Error("expected error for 0")
	}
}

func TestCatalogFetchError(t *testing.T) {
	if CatalogFetchError(nil) != nil {
		t.Fatal("expected nil for nil input")
	}

	cause := &ValidationError{Field: "f", Message: "m"}
	err := CatalogFetchError(cause)

	if !errors.Is(err, ErrCatalogFetch) {
		t.Error("expected error to be marked as catalog fetch failure")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Error("expected cause to remain reachable")
	}
	if !strings.Contains(err.Error(), "fetching catalog") {
		t.Errorf("unexpected message %q", err.Error())
	}
}
