package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
)

// ValidationError carries a field-scoped message the API returns as
// {"<field>": ["<message>"]}.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Payload() map[string][]string {
	return map[string][]string{e.Field: {e.Message}}
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

type PermissionDeniedResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

func NewPermissionDeniedResponse() PermissionDeniedResponse {
	return PermissionDeniedResponse{
		Detail: "You do not have permission to perform this action.",
		Code:   "permission_denied",
	}
}
