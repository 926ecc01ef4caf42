package domain

import (
	"strings"

	"github.com/google/uuid"

	"holiday_planner/pkg/errors"
)

const (
	NameMaxLength        = 150
	DescriptionMaxLength = 500
)

// Address is an immutable value object embedded in Holiday and Activity.
type Address struct {
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

func (a Address) Validate() error {
	switch {
	case strings.TrimSpace(a.Street) == "":
		return errors.Validation("address street is required")
	case strings.TrimSpace(a.StreetNumber) == "":
		return errors.Validation("address street number is required")
	case strings.TrimSpace(a.PostalCode) == "":
		return errors.Validation("address postal code is required")
	case strings.TrimSpace(a.City) == "":
		return errors.Validation("address city is required")
	case strings.TrimSpace(a.Country) == "":
		return errors.Validation("address country is required")
	}
	return nil
}

// Holiday is the aggregate root. Invitations and Activities are owned by
// the holiday and die with it.
type Holiday struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	StartDate   DateTime   `json:"startDate"`
	EndDate     DateTime   `json:"endDate"`
	Address     Address    `json:"address"`
	Published   bool       `json:"published"`
	Invitations []Invitation `json:"-"`
	Activities  []Activity   `json:"-"`
}

// Invitation joins a user to a holiday. One row per (user, holiday) pair.
type Invitation struct {
	UserID    uuid.UUID `json:"userId"`
	HolidayID uuid.UUID `json:"holidayId"`
}

// Guest is the invited-user view exposed in holiday responses.
type Guest struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
}

// HolidayFilter narrows holiday listings. Query matches name or
// description as a substring; From/To bound the start date independently.
type HolidayFilter struct {
	Query string
	From  *DateTime
	To    *DateTime
}

// HolidayDetails carries the validated fields for create and update.
type HolidayDetails struct {
	Name        string
	Description *string
	StartDate   DateTime
	EndDate     DateTime
	Address     Address
	Published   bool
}

func (d HolidayDetails) Validate() error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return errors.Validation("holiday name is required")
	}
	if len(name) > NameMaxLength {
		return errors.Validation("holiday name must be at most %d characters", NameMaxLength)
	}
	if d.Description != nil && len(*d.Description) > DescriptionMaxLength {
		return errors.Validation("holiday description must be at most %d characters", DescriptionMaxLength)
	}
	if d.EndDate.Before(d.StartDate.Time) {
		return errors.Validation("holiday start date must not be after its end date")
	}
	return d.Address.Validate()
}

// IsGuest reports whether the user holds an invitation to the holiday.
// Only meaningful on holidays loaded with their invitations.
func (h *Holiday) IsGuest(userID uuid.UUID) bool {
	for _, inv := range h.Invitations {
		if inv.UserID == userID {
			return true
		}
	}
	return false
}
