package utils

import (
	"claimgate-service/internal/pkg/x12"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterValidation("npi", validateNPI)
	validate.RegisterValidation("taxid", validateTaxID)
	validate.RegisterValidation("servicedate", validateServiceDate)
	validate.RegisterValidation("statecode", validateStateCode)
	validate.RegisterValidation("procedurecode", validateProcedureCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateNPI(fl validator.FieldLevel) bool {
	return x12.ValidNPI(fl.Field().String())
}

func validateTaxID(fl validator.FieldLevel) bool {
	return x12.ValidTaxID(fl.Field().String())
}

func validateServiceDate(fl validator.FieldLevel) bool {
	return x12.ValidCalendarDate(fl.Field().String())
}

func validateStateCode(fl validator.FieldLevel) bool {
	return x12.ValidStateCode(fl.Field().String())
}

func validateProcedureCode(fl validator.FieldLevel) bool {
	return x12.ValidProcedureCode(fl.Field().String())
}
