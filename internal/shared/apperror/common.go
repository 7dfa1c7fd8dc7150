package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeValidation,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField builds the validation error for a missing required field
func RequiredField(field string) *AppError {
	return New(
		CodeValidation,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the validation error for a field that fails a format/range rule
func InvalidField(field, reason string) *AppError {
	if reason == "" {
		return New(
			CodeValidation,
			fmt.Sprintf("%s is invalid", field),
			http.StatusBadRequest,
		)
	}
	return New(
		CodeValidation,
		fmt.Sprintf("%s %s", field, reason),
		http.StatusBadRequest,
	)
}
