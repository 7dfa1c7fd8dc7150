package employeeerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this employee_id already exists",
		http.StatusBadRequest,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrDuplicateValue = apperror.New(
		apperror.CodeConflict,
		"Employee violates a uniqueness constraint",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeBadRequest,
		"No fields to update",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeValidation,
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmptySearchTerm = apperror.New(
		apperror.CodeValidation,
		"Search term must not be empty",
		http.StatusBadRequest,
	)
	ErrReloadAfterWrite = apperror.New(
		apperror.CodeInternalError,
		"Employee was written but could not be reloaded",
		http.StatusInternalServerError,
	)
)
