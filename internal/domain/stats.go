package domain

// UserStatistics summarizes a user's planning activity across every
// holiday they are invited to.
type UserStatistics struct {
	HolidayCount         int64 `json:"holidayCount"`
	UpcomingHolidayCount int64 `json:"upcomingHolidayCount"`
	ActivityCount        int64 `json:"activityCount"`
	MessageCount         int64 `json:"messageCount"`
}
