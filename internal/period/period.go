package period

import (
	"fmt"
	"time"
)

// Range is an inclusive span of calendar days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Noon returns t's calendar date anchored at 12:00 local time. Anchoring
// at noon keeps AddDate arithmetic from crossing a date boundary on
// daylight-saving transition days.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// ISOWeekNumber returns the ISO-8601 week number for the date, where week 1
// is the week containing the year's first Thursday.
func ISOWeekNumber(t time.Time) int {
	_, week := Noon(t).ISOWeek()
	return week
}

// ISOWeekYear returns the ISO week-numbering year for the date, which can
// differ from the calendar year near year boundaries.
func ISOWeekYear(t time.Time) int {
	year, _ := Noon(t).ISOWeek()
	return year
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := Noon(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}

// PreviousWeekRange returns the Monday-Sunday range immediately preceding
// the week containing the reference date. A Monday reference yields the
// week ending the day before it.
func PreviousWeekRange(ref time.Time) Range {
	start := WeekStart(ref).AddDate(0, 0, -7)
	return Range{Start: start, End: start.AddDate(0, 0, 6)}
}

// PreviousMonthRange returns the first and last calendar day of the month
// before the reference date's month.
func PreviousMonthRange(ref time.Time) Range {
	d := Noon(ref)
	firstOfMonth := time.Date(d.Year(), d.Month(), 1, 12, 0, 0, 0, d.Location())
	end := firstOfMonth.AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 12, 0, 0, 0, end.Location())
	return Range{Start: start, End: end}
}

// FormatWeekID renders a date's ISO week as "YYYY-Www", using the ISO week
// year rather than the calendar year.
func FormatWeekID(t time.Time) string {
	year, week := Noon(t).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// FormatMonthID renders a date's month as "YYYY-MM".
func FormatMonthID(t time.Time) string {
	return Noon(t).Format("2006-01")
}

// FormatDate renders a date as "YYYY-MM-DD" from local calendar fields.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DatesInRange returns every calendar date from start through end
// inclusive, ascending, one per day. A start after end yields an empty
// slice.
func DatesInRange(start, end time.Time) []time.Time {
	from := Noon(start)
	to := Noon(end)
	if from.After(to) {
		return nil
	}
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
