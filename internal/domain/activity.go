package domain

import (
	"strings"

	"github.com/google/uuid"

	"holiday_planner/pkg/errors"
)

// Category classifies an activity. Wire values are the case-sensitive
// enum names; anything else is a validation error, never a default.
type Category string

const (
	CategoryEntertainment Category = "Entertainment"
	CategoryCultural      Category = "Cultural"
	CategorySport         Category = "Sport"
	CategoryGastronomic   Category = "Gastronomic"
	CategoryOther         Category = "Other"
)

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryEntertainment, CategoryCultural, CategorySport, CategoryGastronomic, CategoryOther:
		return Category(s), nil
	default:
		return "", errors.Validation("unknown activity category %q", s)
	}
}

// Activity exists only within its owning holiday.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	HolidayID   uuid.UUID `json:"holidayId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	StartDate   DateTime  `json:"startDate"`
	EndDate     DateTime  `json:"endDate"`
	Address     Address   `json:"address"`
	Category    Category  `json:"category"`
}

// ActivityDetails carries the validated fields for create and update.
type ActivityDetails struct {
	Name        string
	Description *string
	StartDate   DateTime
	EndDate     DateTime
	Address     Address
	Category    Category
}

func (d ActivityDetails) Validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return errors.Validation("activity name is required")
	}
	if len(name) > NameMaxLength {
		return errors.Validation("activity name must be at most %d characters", NameMaxLength)
	}
	if d.Description != nil && len(*d.Description) > DescriptionMaxLength {
		return errors.Validation("activity description must be at most %d characters", DescriptionMaxLength)
	}
	if d.EndDate.Before(d.StartDate.Time) {
		return errors.Validation("activity start date must not be after its end date")
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return err
	}
	return d.Address.Validate()
}
