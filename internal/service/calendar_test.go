package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"holiday_planner/internal/domain"
)

func TestCalendarService_BuildICS(t *testing.T) {
	svc := NewCalendarService()

	desc := "A week at the beach; bring sunscreen"
	holiday := &domain.Holiday{
		ID:          uuid.New(),
		Name:        "Beach week",
		Description: &desc,
		StartDate:   domain.NewDateTime(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)),
		EndDate:     domain.NewDateTime(time.Date(2026, 8, 8, 10, 0, 0, 0, time.UTC)),
		Address:     testAddress(),
		Activities: []domain.Activity{
			{
				ID:        uuid.New(),
				Name:      "Surf lesson",
				StartDate: domain.NewDateTime(time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)),
				EndDate:   domain.NewDateTime(time.Date(2026, 8, 2, 11, 0, 0, 0, time.UTC)),
				Address:   testAddress(),
				Category:  domain.CategorySport,
			},
		},
	}

	ics := svc.BuildICS(holiday)

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"), "one event per holiday plus one per activity")

	assert.Contains(t, ics, "SUMMARY:Beach week")
	assert.Contains(t, ics, "DTSTART:20260801T120000")
	assert.Contains(t, ics, "DTEND:20260808T100000")
	assert.Contains(t, ics, "SUMMARY:Surf lesson")
	assert.Contains(t, ics, "LOCATION:7 Strandweg\\, 25980 SYLT (GERMANY)")
	assert.Contains(t, ics, "DESCRIPTION:A week at the beach\\; bring sunscreen")
}

func TestEscapeICS(t *testing.T) {
	assert.Equal(t, `a\,b\;c\\d\ne`, escapeICS("a,b;c\\d\ne"))
}
