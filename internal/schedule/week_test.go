package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRangeStartsOnSunday(t *testing.T) {
	// One reference date per weekday.
	for i := 0; i < 7; i++ {
		ref := time.Date(2024, 3, 3+i, 15, 30, 0, 0, time.UTC)
		days := WeekRange(ref)

		assert.Equal(t, time.Sunday, days[0].Weekday(), "ref %s", ref)
		for j := 1; j < 7; j++ {
			assert.Equal(t, days[0].AddDate(0, 0, j), days[j], "ref %s day %d", ref, j)
		}
		assert.Equal(t, days[0].AddDate(0, 0, 6), days[6])

		// The reference date itself is inside the week.
		found := false
		for _, d := range days {
			if SameDay(d, ref) {
				found = true
			}
		}
		assert.True(t, found, "ref %s not inside its own week", ref)
	}
}

func TestWeekRangeCrossesMonthBoundary(t *testing.T) {
	// 2024-03-01 is a Friday; its week starts on Sunday 2024-02-25.
	days := WeekRange(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC), days[0])
	require.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), days[6])
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2024, 3, 5, 14, 45, 0, 0, time.UTC)
	start, end := DayBounds(day)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(start))
	assert.True(t, SameDay(start, end))
	assert.False(t, SameDay(end, start.AddDate(0, 0, 1)))
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, h)
	assert.Equal(t, 30, m)

	for _, bad := range []string{"", "8", "8:3:0", "ab:cd", "24:00", "10:60", "-1:00"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestHourSlots(t *testing.T) {
	weekly := HourSlots(8, 18)
	require.Len(t, weekly, 11)
	assert.Equal(t, "08:00", weekly[0])
	assert.Equal(t, "18:00", weekly[10])

	daily := HourSlots(8, 20)
	require.Len(t, daily, 13)
	assert.Equal(t, "20:00", daily[12])

	assert.Nil(t, HourSlots(10, 9))
}
