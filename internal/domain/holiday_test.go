package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holiday_planner/pkg/errors"
)

func validAddress() Address {
	return Address{
		Street:       "Hauptstrasse",
		StreetNumber: "12a",
		PostalCode:   "10115",
		City:         "Berlin",
		Country:      "Germany",
	}
}

func validHolidayDetails() HolidayDetails {
	return HolidayDetails{
		Name:      "Winter getaway",
		StartDate: NewDateTime(time.Date(2026, 12, 20, 10, 0, 0, 0, time.UTC)),
		EndDate:   NewDateTime(time.Date(2026, 12, 27, 16, 0, 0, 0, time.UTC)),
		Address:   validAddress(),
	}
}

func TestHolidayDetails_Validate(t *testing.T) {
	assert.NoError(t, validHolidayDetails().Validate())
}

func TestHolidayDetails_NameBoundaries(t *testing.T) {
	d := validHolidayDetails()

	d.Name = ""
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)

	d.Name = "   "
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation, "whitespace-only names count as empty")

	d.Name = strings.Repeat("x", NameMaxLength)
	assert.NoError(t, d.Validate(), "exactly 150 characters is allowed")

	d.Name = strings.Repeat("x", NameMaxLength+1)
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)
}

func TestHolidayDetails_DescriptionBoundary(t *testing.T) {
	d := validHolidayDetails()

	ok := strings.Repeat("d", DescriptionMaxLength)
	d.Description = &ok
	assert.NoError(t, d.Validate())

	long := strings.Repeat("d", DescriptionMaxLength+1)
	d.Description = &long
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)
}

func TestHolidayDetails_DateOrdering(t *testing.T) {
	d := validHolidayDetails()

	d.EndDate = d.StartDate
	assert.NoError(t, d.Validate(), "zero-length holidays are allowed")

	d.EndDate = NewDateTime(d.StartDate.Add(-time.Hour))
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)
}

func TestHolidayDetails_IncompleteAddress(t *testing.T) {
	d := validHolidayDetails()
	d.Address.City = ""
	assert.ErrorIs(t, d.Validate(), errors.ErrValidation)
}

func TestAddress_Validate(t *testing.T) {
	require.NoError(t, validAddress().Validate())

	fields := []func(*Address){
		func(a *Address) { a.Street = "" },
		func(a *Address) { a.StreetNumber = "" },
		func(a *Address) { a.PostalCode = "" },
		func(a *Address) { a.City = "" },
		func(a *Address) { a.Country = "" },
	}
	for i, blank := range fields {
		a := validAddress()
		blank(&a)
		assert.ErrorIs(t, a.Validate(), errors.ErrValidation, "field %d must be required", i)
	}
}

func TestHoliday_IsGuest(t *testing.T) {
	guest := uuid.New()
	h := testHoliday(false, guest)

	assert.True(t, h.IsGuest(guest))
	assert.False(t, h.IsGuest(uuid.New()))
}
