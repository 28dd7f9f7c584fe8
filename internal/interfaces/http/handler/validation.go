package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// An alien registration number is 7 to 9 digits, with or without the leading A.
var aNumberPattern = regexp.MustCompile(`^A?[0-9]{7,9}$`)

// RegisterValidations installs the custom binding validators used by the
// entity payloads. Safe to call more than once.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("a_number", func(fl validator.FieldLevel) bool {
		return aNumberPattern.MatchString(fl.Field().String())
	})
}
