package application

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for common conditions
var (
	// ErrCatalogFetch marks a failed catalog pull. It is the only failure that
	// aborts a run; callers test for it with github.com/cockroachdb/errors.Is.
	ErrCatalogFetch = errors.New("catalog fetch failed")
	ErrNotFound     = errors.New("not found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CatalogFetchError wraps a catalog source failure and marks it with ErrCatalogFetch
func CatalogFetchError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.Wrap(err, "fetching catalog"), ErrCatalogFetch)
}
