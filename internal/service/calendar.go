package service

import (
	"fmt"
	"strings"

	"holiday_planner/internal/domain"
)

// CalendarService renders a holiday and its activities as an iCalendar
// document for export.
type CalendarService interface {
	BuildICS(holiday *domain.Holiday) string
}

type calendarService struct{}

func NewCalendarService() CalendarService {
	return &calendarService{}
}

const icsTimeLayout = "20060102T150400"

func (s *calendarService) BuildICS(holiday *domain.Holiday) string {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//holiday-planner//EN\r\n")

	writeEvent(&b, holiday.ID.String(), holiday.Name, holiday.Description,
		holiday.StartDate, holiday.EndDate, holiday.Address)
	for i := range holiday.Activities {
		a := &holiday.Activities[i]
		writeEvent(&b, a.ID.String(), a.Name, a.Description, a.StartDate, a.EndDate, a.Address)
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, uid, summary string, description *string, start, end domain.DateTime, address domain.Address) {
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s\r\n", uid)
	fmt.Fprintf(b, "SUMMARY:%s\r\n", escapeICS(summary))
	if description != nil && *description != "" {
		fmt.Fprintf(b, "DESCRIPTION:%s\r\n", escapeICS(*description))
	}
	fmt.Fprintf(b, "DTSTART:%s\r\n", start.Format(icsTimeLayout))
	fmt.Fprintf(b, "DTEND:%s\r\n", end.Format(icsTimeLayout))
	fmt.Fprintf(b, "LOCATION:%s\r\n", escapeICS(formatLocation(address)))
	b.WriteString("END:VEVENT\r\n")
}

func formatLocation(a domain.Address) string {
	return fmt.Sprintf("%s %s, %s %s (%s)",
		a.StreetNumber, a.Street, a.PostalCode, strings.ToUpper(a.City), strings.ToUpper(a.Country))
}

func escapeICS(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
