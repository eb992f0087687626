package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map for client responses.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report field names as they appear on the wire (json/form tags),
	// not as Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate runs structural validation and converts the library's error
// list into a ValidationError.
func (v *Validator) Validate(obj interface{}) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError and friends: programmer error, not input
		return err
	}

	errs := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errs[fieldErr.Field()] = messageForTag(fieldErr)
	}
	return &ValidationError{Errors: errs}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "national-phone":
		return "must be exactly 10 digits"
	case "is-gender":
		return "must be one of MALE, FEMALE, TRANSGENDER"
	case "is-work-experience":
		return "must be one of FRESHER, EXPERIENCED"
	default:
		return fmt.Sprintf("failed on '%s' validation", fe.Tag())
	}
}
