package utils

import (
	"carelink-web/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	simpleEmailRegex = regexp.MustCompile(constvars.RegexSimpleEmail)
	hasUpperRegex    = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	hasDigitRegex    = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("simple_email", validateSimpleEmail)
	validate.RegisterValidation("has_upper", validateHasUppercase)
	validate.RegisterValidation("has_digit", validateHasDigit)
	validate.RegisterValidation("account_role", validateAccountRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSimpleEmail(fl validator.FieldLevel) bool {
	return simpleEmailRegex.MatchString(fl.Field().String())
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return hasUpperRegex.MatchString(fl.Field().String())
}

func validateHasDigit(fl validator.FieldLevel) bool {
	return hasDigitRegex.MatchString(fl.Field().String())
}

func validateAccountRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RoleDoctor || value == constvars.RolePatient
}
