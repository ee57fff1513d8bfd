package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wieku/danser-sliders/framework/math/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slider_colour", func(fl validator.FieldLevel) bool {
			_, err := color.ParseHex(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
