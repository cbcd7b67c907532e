package validator

import (
	"log"

	"weddinghub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enum rules into the validator
// instance. Registration failure is a programming error, so it is fatal.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-vendor-category", validateVendorCategory)
	mustRegister("is-price-range", validatePriceRange)
	mustRegister("is-verification-status", validateVerificationStatus)
	mustRegister("is-quote-action", validateQuoteAction)
	mustRegister("is-compliance-tag", validateComplianceTag)
}

func validateVendorCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}
	for _, c := range models.VendorCategories {
		if models.VendorCategory(value) == c {
			return true
		}
	}
	return false
}

func validatePriceRange(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, p := range models.PriceRanges {
		if models.PriceRange(value) == p {
			return true
		}
	}
	return false
}

func validateVerificationStatus(fl validator.FieldLevel) bool {
	switch models.VerificationStatus(fl.Field().String()) {
	case models.VerificationPending, models.VerificationUnderReview,
		models.VerificationApproved, models.VerificationRejected:
		return true
	case "":
		return true
	default:
		return false
	}
}

func validateQuoteAction(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "accept", "decline", "respond", "":
		return true
	default:
		return false
	}
}

// validateComplianceTag accepts a single tag value; slices are validated
// element-wise with the 'dive' tag.
func validateComplianceTag(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, tag := range models.ComplianceTags {
		if value == tag {
			return true
		}
	}
	return false
}
