package interview

import (
	"errors"
	"fmt"
)

// Errors the lifecycle surfaces to callers. Upstream model failures never
// appear here: they are absorbed by the generator/grader fallbacks and show up
// only as degraded content.
var (
	ErrNotFound     = errors.New("interview not found")
	ErrForbidden    = errors.New("interview belongs to another user")
	ErrInvalidState = errors.New("operation not allowed in current interview state")
)

// ValidationError reports a missing or empty request field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
