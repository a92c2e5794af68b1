package zenkaku

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidVariant indicates a variant definition violates the
	// table or rule invariants.
	ErrInvalidVariant = errors.New("invalid variant")

	// ErrUnknownVariant indicates a name with no registered codec.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrVariantFile indicates a variant file could not be parsed or
	// declares malformed definitions.
	ErrVariantFile = errors.New("invalid variant file")
)

// VariantError wraps a sentinel error with the variant name and the
// detail that triggered it.
type VariantError struct {
	Err     error  // Underlying sentinel error (ErrInvalidVariant, etc.)
	Variant string // Variant name involved
	Detail  string // What went wrong
}

func (e *VariantError) Error() string {
	if e.Variant != "" && e.Detail != "" {
		return fmt.Sprintf("%s %q: %s", e.Err.Error(), e.Variant, e.Detail)
	}
	if e.Variant != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Variant)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
	}
	return e.Err.Error()
}

func (e *VariantError) Unwrap() error {
	return e.Err
}

// newVariantError creates a VariantError for construction and lookup failures.
func newVariantError(sentinel error, variant, detail string) error {
	return &VariantError{
		Err:     sentinel,
		Variant: variant,
		Detail:  detail,
	}
}
