package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts a gin binding failure into a validation
// AppError naming the first offending field and the rule it broke.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return InvalidField(field, "must be a valid email address")
		case "min", "gte":
			return InvalidField(field, fmt.Sprintf("must be at least %s", e.Param()))
		case "max", "lte":
			return InvalidField(field, fmt.Sprintf("must be at most %s", e.Param()))
		case "datetime":
			return InvalidField(field, fmt.Sprintf("must match the %s format", e.Param()))
		default:
			return InvalidField(field, "")
		}
	}

	return Wrap(err, CodeValidation, "Invalid request payload", http.StatusBadRequest)
}
