package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// mapRepositoryError translates storage-layer faults into the domain
// taxonomy. Unique-constraint violations become conflicts so that two
// creates racing past the application-level existence check still surface
// as a duplicate, not a raw database error.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		switch pgErr.ConstraintName {
		case "uq_employees_employee_id":
			return employeeerrors.ErrEmployeeIDAlreadyExists
		case "uq_employees_email":
			return employeeerrors.ErrEmailAlreadyExists
		}
		return employeeerrors.ErrDuplicateValue
	}

	// Some drivers flatten the pg error before it reaches us.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_employees_employee_id") {
			return employeeerrors.ErrEmployeeIDAlreadyExists
		}
		if strings.Contains(errMsg, "uq_employees_email") {
			return employeeerrors.ErrEmailAlreadyExists
		}
		return employeeerrors.ErrDuplicateValue
	}

	return apperror.Wrap(err, apperror.CodeStorage, "Storage operation failed", http.StatusInternalServerError)
}
