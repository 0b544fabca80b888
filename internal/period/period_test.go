package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestISOWeekNumber(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantWeek int
		wantYear int
	}{
		{"mid-year Wednesday", date(2025, time.June, 11), 24, 2025},
		{"Dec 31 belongs to next ISO year", date(2024, time.December, 31), 1, 2025},
		{"Jan 1 on a Friday belongs to prior ISO year", date(2021, time.January, 1), 53, 2020},
		{"first Thursday anchors week 1", date(2026, time.January, 1), 1, 2026},
		{"leap-year Feb 29", date(2024, time.February, 29), 9, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantWeek, ISOWeekNumber(tt.date))
			assert.Equal(t, tt.wantYear, ISOWeekYear(tt.date))
		})
	}
}

func TestISOWeekStableUnderTimeOfDay(t *testing.T) {
	// The week id of a date must not depend on the hour it is evaluated at,
	// including midnight on a DST transition day.
	d := time.Date(2025, time.March, 30, 0, 0, 0, 0, time.Local)
	midnight := ISOWeekNumber(d)
	noon := ISOWeekNumber(d.Add(12 * time.Hour))
	evening := ISOWeekNumber(d.Add(23 * time.Hour))
	assert.Equal(t, midnight, noon)
	assert.Equal(t, midnight, evening)
	assert.Equal(t, FormatWeekID(d), FormatWeekID(d.Add(12*time.Hour)))
}

func TestPreviousWeekRange(t *testing.T) {
	// A Monday reference returns the 7-day span ending the Sunday before it.
	monday := date(2025, time.June, 9)
	r := PreviousWeekRange(monday)
	assert.Equal(t, "2025-06-02", FormatDate(r.Start))
	assert.Equal(t, "2025-06-08", FormatDate(r.End))
	assert.Equal(t, time.Monday, r.Start.Weekday())
	assert.Equal(t, time.Sunday, r.End.Weekday())

	// Mid-week reference lands in the same previous week.
	thursday := date(2025, time.June, 12)
	r = PreviousWeekRange(thursday)
	assert.Equal(t, "2025-06-02", FormatDate(r.Start))
	assert.Equal(t, "2025-06-08", FormatDate(r.End))
}

func TestPreviousMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart string
		wantEnd   string
	}{
		{"31-day previous month", date(2025, time.June, 15), "2025-05-01", "2025-05-31"},
		{"30-day previous month", date(2025, time.May, 1), "2025-04-01", "2025-04-30"},
		{"February non-leap", date(2025, time.March, 10), "2025-02-01", "2025-02-28"},
		{"February leap year", date(2024, time.March, 10), "2024-02-01", "2024-02-29"},
		{"January wraps to December", date(2025, time.January, 5), "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PreviousMonthRange(tt.ref)
			assert.Equal(t, tt.wantStart, FormatDate(r.Start))
			assert.Equal(t, tt.wantEnd, FormatDate(r.End))
		})
	}
}

func TestFormatIDs(t *testing.T) {
	d := date(2025, time.February, 3)
	assert.Equal(t, "2025-W06", FormatWeekID(d))
	assert.Equal(t, "2025-02", FormatMonthID(d))
	assert.Equal(t, "2025-02-03", FormatDate(d))

	// Week id uses the ISO week year, not the calendar year.
	assert.Equal(t, "2025-W01", FormatWeekID(date(2024, time.December, 31)))
}

func TestDatesInRange(t *testing.T) {
	start := date(2025, time.June, 28)
	end := date(2025, time.July, 2)
	dates := DatesInRange(start, end)
	require.Len(t, dates, 5)
	assert.Equal(t, "2025-06-28", FormatDate(dates[0]))
	assert.Equal(t, "2025-07-02", FormatDate(dates[4]))
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]))
	}
}

func TestDatesInRangeEdges(t *testing.T) {
	d := date(2025, time.June, 1)
	same := DatesInRange(d, d)
	require.Len(t, same, 1)
	assert.Equal(t, "2025-06-01", FormatDate(same[0]))

	assert.Empty(t, DatesInRange(d.AddDate(0, 0, 1), d))
}
