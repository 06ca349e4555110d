package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"salonboard/internal/domain/model"
)

func testAppointment(id, employeeID string, date time.Time, start, end string) model.Appointment {
	return model.Appointment{
		ID:         id,
		CompanyID:  "c1",
		ClientID:   "client-" + id,
		EmployeeID: employeeID,
		Service:    model.ServiceSnapshot{Name: "Haircut", Price: 50, DurationMinutes: 45},
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     model.StatusScheduled,
	}
}

// collect returns every placement in the grid, in cell order.
func collect(g Grid) []Placement {
	var out []Placement
	for _, day := range g.Cells {
		for _, cell := range day {
			out = append(out, cell...)
		}
	}
	return out
}

func TestBuildWeekGridAnchorAndSpan(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) // Tuesday

	grid := b.BuildWeekGrid(day, []model.Appointment{
		testAppointment("a1", "e1", day, "10:00", "10:45"),
		testAppointment("a2", "e1", day, "10:00", "11:30"),
	}, WeeklyOptions(""))

	require.Len(t, grid.Days, 7)
	require.Equal(t, HourSlots(8, 18), grid.Hours)

	// Tuesday is day index 2 in a Sunday-start week; the 10:00 row is index 2.
	cell := grid.Cells[2][2]
	require.Len(t, cell, 2)

	// Ending at 10:45 still only occupies the 10:00 row: span 0.
	assert.Equal(t, "a1", cell[0].Appointment.ID)
	assert.Equal(t, 10, cell[0].AnchorHour)
	assert.Equal(t, 0, cell[0].Span)

	// Ending at 11:30 reaches the 11:00 row but anchors once at 10:00.
	assert.Equal(t, "a2", cell[1].Appointment.ID)
	assert.Equal(t, 10, cell[1].AnchorHour)
	assert.Equal(t, 1, cell[1].Span)

	// The anchor is the only cell carrying the payload; the 11:00 row the
	// second appointment visually covers is empty.
	assert.Empty(t, grid.Cells[2][3])
}

func TestBuildWeekGridEmployeeFilter(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	appts := []model.Appointment{
		testAppointment("a1", "e1", day, "09:00", "10:00"),
		testAppointment("a2", "e2", day, "09:00", "10:00"),
		testAppointment("a3", "e2", day.AddDate(0, 0, 1), "14:00", "15:00"),
	}

	all := b.BuildWeekGrid(day, appts, WeeklyOptions(""))
	assert.Len(t, collect(all), 3)

	allKeyword := b.BuildWeekGrid(day, appts, WeeklyOptions("all"))
	assert.Len(t, collect(allKeyword), 3)

	onlyE1 := b.BuildWeekGrid(day, appts, WeeklyOptions("e1"))
	placed := collect(onlyE1)
	require.Len(t, placed, 1)
	assert.Equal(t, "a1", placed[0].Appointment.ID)
}

func TestBuildWeekGridOverlapKeepsBoth(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	grid := b.BuildWeekGrid(day, []model.Appointment{
		testAppointment("a1", "e1", day, "09:00", "11:00"),
		testAppointment("a2", "e1", day, "09:30", "10:30"),
	}, WeeklyOptions("e1"))

	// Both land in the 09:00 anchor cell; neither is dropped.
	cell := grid.Cells[2][1]
	require.Len(t, cell, 2)
	assert.Equal(t, "a1", cell[0].Appointment.ID)
	assert.Equal(t, "a2", cell[1].Appointment.ID)
}

func TestBuildWeekGridClipsOutOfRange(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	grid := b.BuildWeekGrid(day, []model.Appointment{
		testAppointment("early", "e1", day, "06:00", "07:30"),
		testAppointment("late", "e1", day, "19:00", "21:00"),
		testAppointment("straddle", "e1", day, "07:00", "09:30"),
	}, WeeklyOptions(""))

	placed := collect(grid)
	require.Len(t, placed, 1, "wholly out-of-range appointments are omitted without error")
	assert.Equal(t, "straddle", placed[0].Appointment.ID)
	assert.Equal(t, 8, placed[0].AnchorHour, "anchor clamps to the first visible row")
	assert.Equal(t, 1, placed[0].Span)
}

func TestBuildWeekGridSkipsMalformedTimes(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	grid := b.BuildWeekGrid(day, []model.Appointment{
		testAppointment("bad-start", "e1", day, "not-a-time", "10:00"),
		testAppointment("bad-end", "e1", day, "10:00", ""),
		testAppointment("inverted", "e1", day, "12:00", "11:00"),
		testAppointment("ok", "e1", day, "10:00", "11:00"),
	}, WeeklyOptions(""))

	placed := collect(grid)
	require.Len(t, placed, 1)
	assert.Equal(t, "ok", placed[0].Appointment.ID)
}

func TestBuildWeekGridDeterministic(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	appts := []model.Appointment{
		testAppointment("a1", "e1", day, "09:00", "10:00"),
		testAppointment("a2", "e2", day, "10:00", "12:00"),
	}

	first := b.BuildWeekGrid(day, appts, WeeklyOptions(""))
	second := b.BuildWeekGrid(day, appts, WeeklyOptions(""))
	assert.Equal(t, first, second)
}

func TestBuildDayGrid(t *testing.T) {
	b := NewBuilder(zaptest.NewLogger(t))
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	grid := b.BuildDayGrid(day, []model.Appointment{
		testAppointment("a1", "e1", day, "19:00", "20:30"),
		testAppointment("a2", "e1", day.AddDate(0, 0, 1), "09:00", "10:00"),
	}, DailyOptions(""))

	require.Len(t, grid.Days, 1)
	require.Equal(t, HourSlots(8, 20), grid.Hours)

	// The 19:00 appointment fits the daily 08:00-20:00 range but would be
	// clipped from the weekly 08:00-18:00 one; the other day is excluded.
	placed := collect(grid)
	require.Len(t, placed, 1)
	assert.Equal(t, "a1", placed[0].Appointment.ID)
	assert.Equal(t, 19, placed[0].AnchorHour)
}

func TestOccupiesTruncatesMinutes(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	a := testAppointment("a1", "e1", day, "10:15", "11:45")

	assert.True(t, Occupies(a, day, 10, ""))
	assert.True(t, Occupies(a, day, 11, ""))
	assert.False(t, Occupies(a, day, 9, ""))
	assert.False(t, Occupies(a, day, 12, ""))
	assert.False(t, Occupies(a, day.AddDate(0, 0, 1), 10, ""))
	assert.False(t, Occupies(a, day, 10, "e2"))
	assert.True(t, Occupies(a, day, 10, "all"))
}
