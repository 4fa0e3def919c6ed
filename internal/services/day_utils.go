package services

import "time"

const dayKeyLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayKey renders the local calendar day of value as the day-granular string
// stored in SessionProfile.LastVisitDate. Day-rollover detection is string
// equality on these keys, so "a day" is local midnight to midnight.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayKeyLayout)
}

func SameCalendarDay(first time.Time, second time.Time, location *time.Location) bool {
	return DayKey(first, location) == DayKey(second, location)
}

// ParseDayKey parses a YYYY-MM-DD string as a midnight in location.
func ParseDayKey(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(dayKeyLayout, value, location)
}
