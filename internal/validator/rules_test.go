package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryForm struct {
	Category string `validate:"required,is-vendor-category"`
}

type quoteActionForm struct {
	Action string `validate:"required,is-quote-action"`
}

type complianceForm struct {
	Tags []string `validate:"dive,is-compliance-tag"`
}

func TestVendorCategoryRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&categoryForm{Category: "CATERERS"}))
	assert.NoError(t, v.Validate(&categoryForm{Category: "NIKAH_OFFICIANTS"}))

	err := v.Validate(&categoryForm{Category: "DJ_SERVICES"})
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "is not a valid vendor category", ve.Errors["category"])
}

func TestRequiredBeatsEnumRule(t *testing.T) {
	v := New()

	err := v.Validate(&categoryForm{})
	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "is required", ve.Errors["category"])
}

func TestQuoteActionRule(t *testing.T) {
	v := New()

	for _, action := range []string{"accept", "decline", "respond"} {
		assert.NoError(t, v.Validate(&quoteActionForm{Action: action}), action)
	}

	err := v.Validate(&quoteActionForm{Action: "ignore"})
	require.Error(t, err)
}

func TestComplianceTagRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&complianceForm{
		Tags: []string{"halal", "prayerSpace", "genderSeparated", "noAlcohol", "femaleStaff"},
	}))
	assert.NoError(t, v.Validate(&complianceForm{}))

	err := v.Validate(&complianceForm{Tags: []string{"halal", "vegan"}})
	require.Error(t, err)
}
