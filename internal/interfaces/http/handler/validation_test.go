package handler

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestANumberValidation(t *testing.T) {
	RegisterValidations()

	type payload struct {
		ANumber *string `binding:"omitempty,a_number"`
	}

	valid := []string{"A123456789", "1234567", "A1234567"}
	for _, raw := range valid {
		v := raw
		assert.NoError(t, binding.Validator.ValidateStruct(&payload{ANumber: &v}), raw)
	}

	invalid := []string{"B123456789", "123", "A12345678901", "not-a-number"}
	for _, raw := range invalid {
		v := raw
		assert.Error(t, binding.Validator.ValidateStruct(&payload{ANumber: &v}), raw)
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&payload{}))
}
