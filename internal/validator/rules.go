package validator

import (
	"log"

	"jobportal_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'national-phone': national phone segment, exactly 10 digit characters
	mustRegister("national-phone", validateNationalPhone)

	// 'is-gender': MALE | FEMALE | TRANSGENDER
	mustRegister("is-gender", validateGender)

	// 'is-work-experience': FRESHER | EXPERIENCED
	mustRegister("is-work-experience", validateWorkExperience)
}

// IsNationalPhone reports whether s is exactly 10 digit characters. This is
// the whole phone contract: no E.164, no country-code checks.
func IsNationalPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validateNationalPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' covers absence
	}
	return IsNationalPhone(value)
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.Gender(value).IsValid()
}

func validateWorkExperience(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.WorkExperience(value).IsValid()
}
