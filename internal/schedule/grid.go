package schedule

import (
	"time"

	"go.uber.org/zap"

	"salonboard/internal/domain/model"
)

// Grid hour ranges used by the dashboard views.
const (
	WeeklyStartHour = 8
	WeeklyEndHour   = 18
	DailyStartHour  = 8
	DailyEndHour    = 20
)

// Options configures a grid build. EmployeeID "" or "all" places every
// employee's appointments; anything else places only the matching employee.
type Options struct {
	StartHour  int
	EndHour    int
	EmployeeID string
}

// WeeklyOptions returns the options for the weekly schedule view.
func WeeklyOptions(employeeID string) Options {
	return Options{StartHour: WeeklyStartHour, EndHour: WeeklyEndHour, EmployeeID: employeeID}
}

// DailyOptions returns the options for the daily agenda view.
func DailyOptions(employeeID string) Options {
	return Options{StartHour: DailyStartHour, EndHour: DailyEndHour, EmployeeID: employeeID}
}

// Placement anchors one appointment in a single grid cell. The renderer draws
// one box at the anchor covering Span row-heights; rows below the anchor that
// the box visually covers carry no duplicate payload.
type Placement struct {
	Appointment model.Appointment `json:"appointment"`
	AnchorHour  int               `json:"anchorHour"`
	Span        int               `json:"span"`
}

// Grid is the derived week (or single-day) calendar layout. Cells is indexed
// [day][row] and lists the placements anchored in that cell; overlapping
// appointments share a cell and are all exposed, stacking is left to the
// presentation layer.
type Grid struct {
	Days  []time.Time     `json:"days"`
	Hours []string        `json:"hours"`
	Cells [][][]Placement `json:"cells"`
}

// Builder computes calendar grids from an already-fetched appointment
// snapshot. It is deterministic and side-effect-free apart from logging
// skipped malformed records.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder constructs a Builder.
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger.Named("schedule_grid")}
}

// BuildWeekGrid lays the appointments onto the 7-day week containing ref.
func (b *Builder) BuildWeekGrid(ref time.Time, appointments []model.Appointment, opts Options) Grid {
	week := WeekRange(ref)
	days := make([]time.Time, len(week))
	copy(days, week[:])
	return b.build(days, appointments, opts)
}

// BuildDayGrid lays the appointments onto a single day column.
func (b *Builder) BuildDayGrid(day time.Time, appointments []model.Appointment, opts Options) Grid {
	start, _ := DayBounds(day)
	return b.build([]time.Time{start}, appointments, opts)
}

func (b *Builder) build(days []time.Time, appointments []model.Appointment, opts Options) Grid {
	rows := opts.EndHour - opts.StartHour + 1
	cells := make([][][]Placement, len(days))
	for i := range cells {
		cells[i] = make([][]Placement, rows)
	}
	grid := Grid{Days: days, Hours: HourSlots(opts.StartHour, opts.EndHour), Cells: cells}

	for _, a := range appointments {
		if !matchesEmployee(a, opts.EmployeeID) {
			continue
		}
		dayIdx := -1
		for i, d := range days {
			if SameDay(a.Date, d) {
				dayIdx = i
				break
			}
		}
		if dayIdx < 0 {
			continue
		}
		anchor, span, ok := b.anchor(a, opts)
		if !ok {
			continue
		}
		row := anchor - opts.StartHour
		cells[dayIdx][row] = append(cells[dayIdx][row], Placement{
			Appointment: a,
			AnchorHour:  anchor,
			Span:        span,
		})
	}
	return grid
}

// anchor computes the single anchor row and span for an appointment, or
// reports that it falls outside the grid or is malformed. Hours are compared
// by hour component only; minutes are ignored, so an appointment ending at
// 10:45 occupies the 10:00 row and never reaches 11:00.
func (b *Builder) anchor(a model.Appointment, opts Options) (anchorHour, span int, ok bool) {
	startHour, startMin, err := ParseClock(a.StartTime)
	if err != nil {
		b.logger.Warn("skipping appointment with malformed start time",
			zap.String("appointment_id", a.ID), zap.String("start_time", a.StartTime))
		return 0, 0, false
	}
	endHour, endMin, err := ParseClock(a.EndTime)
	if err != nil {
		b.logger.Warn("skipping appointment with malformed end time",
			zap.String("appointment_id", a.ID), zap.String("end_time", a.EndTime))
		return 0, 0, false
	}
	if startHour*60+startMin >= endHour*60+endMin {
		b.logger.Warn("skipping appointment with inverted time range",
			zap.String("appointment_id", a.ID),
			zap.String("start_time", a.StartTime), zap.String("end_time", a.EndTime))
		return 0, 0, false
	}

	if startHour == endHour {
		// Sub-hour appointment: anchored at its start row with span 0.
		if startHour < opts.StartHour || startHour > opts.EndHour {
			return 0, 0, false
		}
		return startHour, 0, true
	}
	// Occupied rows are [startHour, endHour); clip to the configured range
	// and drop appointments wholly outside it.
	if endHour <= opts.StartHour || startHour > opts.EndHour {
		return 0, 0, false
	}
	anchorHour = startHour
	if anchorHour < opts.StartHour {
		anchorHour = opts.StartHour
	}
	return anchorHour, endHour - anchorHour, true
}

// Occupies reports whether the appointment is present at the given day and
// hour row under the employee filter, comparing by hour component only.
// Minutes are ignored by design, preserved from the historical layout rule.
func Occupies(a model.Appointment, day time.Time, hour int, employeeID string) bool {
	if !matchesEmployee(a, employeeID) || !SameDay(a.Date, day) {
		return false
	}
	startHour, _, err := ParseClock(a.StartTime)
	if err != nil {
		return false
	}
	endHour, _, err := ParseClock(a.EndTime)
	if err != nil {
		return false
	}
	return hour >= startHour && hour < endHour
}

func matchesEmployee(a model.Appointment, employeeID string) bool {
	return employeeID == "" || employeeID == "all" || employeeID == a.EmployeeID
}
