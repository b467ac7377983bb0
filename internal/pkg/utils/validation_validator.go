package utils

import (
	"openhours-service/internal/pkg/openhours"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_interval", validateSlotInterval)
	validate.RegisterValidation("hours_format", validateHoursFormat)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlotInterval(fl validator.FieldLevel) bool {
	return openhours.ValidInterval(int(fl.Field().Int()))
}

func validateHoursFormat(fl validator.FieldLevel) bool {
	return openhours.FilterFormat(fl.Field().String()) != ""
}
