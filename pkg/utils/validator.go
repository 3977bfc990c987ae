package utils

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator - wrapper để gắn vào Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate thực thi interface echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}
