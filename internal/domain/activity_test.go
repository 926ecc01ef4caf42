package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday_planner/pkg/errors"
)

func TestParseCategory(t *testing.T) {
	for _, valid := range []string{"Entertainment", "Cultural", "Sport", "Gastronomic", "Other"} {
		c, err := ParseCategory(valid)
		require.NoError(t, err)
		assert.Equal(t, Category(valid), c)
	}
}

func TestParseCategory_CaseSensitive(t *testing.T) {
	for _, bad := range []string{"sport", "SPORT", "entertainment", "Hiking", ""} {
		_, err := ParseCategory(bad)
		assert.ErrorIs(t, err, errors.ErrValidation, "category %q must be rejected, never defaulted", bad)
	}
}

func validActivityDetails() ActivityDetails {
	return ActivityDetails{
		Name:      "Museum visit",
		StartDate: NewDateTime(time.Date(2026, 7, 2, 10, 0, 0, 0, time.UTC)),
		EndDate:   NewDateTime(time.Date(2026, 7, 2, 13, 0, 0, 0, time.UTC)),
		Address:   validAddress(),
		Category:  CategoryCultural,
	}
}

func TestActivityDetails_Validate(t *testing.T) {
	assert.NoError(t, validActivityDetails().Validate())

	d := validActivityDetails()
	d.Category = "cultural"
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)

	d = validActivityDetails()
	d.Name = ""
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)

	d = validActivityDetails()
	d.EndDate = NewDateTime(d.StartDate.Add(-time.Minute))
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)

	d = validActivityDetails()
	d.Address.Country = ""
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)
}
