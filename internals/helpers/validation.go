package helper

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// Validate adalah instance validator global untuk semua DTO request.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	return v
}

// IsValidPhone: format '+999999999', opsional prefix '+'/'1', 9-15 digit.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
