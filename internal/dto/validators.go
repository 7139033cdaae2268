package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Cost codes are short alphanumeric identifiers like "cc-100" or "BILL".
var costCodeRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

// RegisterValidators installs the custom binding validations used by the
// request DTOs on the given validator engine.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("costcode", func(fl validator.FieldLevel) bool {
		return costCodeRe.MatchString(fl.Field().String())
	})
}
