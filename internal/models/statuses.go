package models

type UserRole string
type VendorCategory string
type PriceRange string
type VerificationStatus string
type QuoteStatus string
type OutboxStatus string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleVendor   UserRole = "vendor"
	UserRoleCustomer UserRole = "customer"

	CategoryVenues          VendorCategory = "VENUES"
	CategoryCaterers        VendorCategory = "CATERERS"
	CategoryPhotographers   VendorCategory = "PHOTOGRAPHERS"
	CategoryVideographers   VendorCategory = "VIDEOGRAPHERS"
	CategoryFlorists        VendorCategory = "FLORISTS"
	CategoryBridal          VendorCategory = "BRIDAL"
	CategoryNikahOfficiants VendorCategory = "NIKAH_OFFICIANTS"
	CategoryHairMakeup      VendorCategory = "HAIR_MAKEUP"
	CategoryJewelry         VendorCategory = "JEWELRY"
	CategoryDecorations     VendorCategory = "DECORATIONS"
	CategoryTransportation  VendorCategory = "TRANSPORTATION"
	CategoryEntertainment   VendorCategory = "ENTERTAINMENT"

	PriceRangeBudget      PriceRange = "BUDGET"
	PriceRangeModerate    PriceRange = "MODERATE"
	PriceRangeLuxury      PriceRange = "LUXURY"
	PriceRangeUltraLuxury PriceRange = "ULTRA_LUXURY"

	VerificationPending     VerificationStatus = "PENDING"
	VerificationUnderReview VerificationStatus = "UNDER_REVIEW"
	VerificationApproved    VerificationStatus = "APPROVED"
	VerificationRejected    VerificationStatus = "REJECTED"

	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusResponded QuoteStatus = "RESPONDED"
	QuoteStatusDeclined  QuoteStatus = "DECLINED"

	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// Islamic compliance tags used for directory filtering.
const (
	ComplianceHalal           = "halal"
	CompliancePrayerSpace     = "prayerSpace"
	ComplianceGenderSeparated = "genderSeparated"
	ComplianceNoAlcohol       = "noAlcohol"
	ComplianceFemaleStaff     = "femaleStaff"
)

var VendorCategories = []VendorCategory{
	CategoryVenues, CategoryCaterers, CategoryPhotographers,
	CategoryVideographers, CategoryFlorists, CategoryBridal,
	CategoryNikahOfficiants, CategoryHairMakeup, CategoryJewelry,
	CategoryDecorations, CategoryTransportation, CategoryEntertainment,
}

var PriceRanges = []PriceRange{
	PriceRangeBudget, PriceRangeModerate, PriceRangeLuxury, PriceRangeUltraLuxury,
}

var ComplianceTags = []string{
	ComplianceHalal, CompliancePrayerSpace, ComplianceGenderSeparated,
	ComplianceNoAlcohol, ComplianceFemaleStaff,
}

// CanTransitionVerification is the admin state machine: PENDING may move to
// any state, UNDER_REVIEW only to a terminal one, terminals never move.
func CanTransitionVerification(from, to VerificationStatus) bool {
	switch from {
	case VerificationPending:
		return to == VerificationUnderReview || to == VerificationApproved || to == VerificationRejected
	case VerificationUnderReview:
		return to == VerificationApproved || to == VerificationRejected
	default:
		return false
	}
}
