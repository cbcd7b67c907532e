package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the custom domain rules
// registered.
type Validator struct {
	validate *validator.Validate
}

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for field, msg := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func New() *Validator {
	v := validator.New()
	registerCustomRules(v)
	return &Validator{validate: v}
}

// Validate runs struct validation and converts validator errors into a
// ValidationError with readable messages.
func (v *Validator) Validate(obj interface{}) error {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errs := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		errs[fieldName(fe)] = messageFor(fe)
	}
	return &ValidationError{Errors: errs}
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.StructField()
	}
	// Lowercase first rune to match JSON field naming.
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "is-vendor-category":
		return "is not a valid vendor category"
	case "is-price-range":
		return "is not a valid price range"
	case "is-verification-status":
		return "is not a valid verification status"
	case "is-quote-action":
		return "must be one of accept, decline, respond"
	case "is-compliance-tag":
		return "contains an unknown compliance tag"
	default:
		return fmt.Sprintf("failed on rule '%s'", fe.Tag())
	}
}
