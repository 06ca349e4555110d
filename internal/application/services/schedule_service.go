package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"salonboard/internal/domain/model"
	"salonboard/internal/domain/repository"
	"salonboard/internal/schedule"
)

// WeekSchedule is the weekly calendar view payload.
type WeekSchedule struct {
	Grid schedule.Grid `json:"grid"`
}

// DayAgenda is the single-day view payload: the day grid plus the same
// appointments as a flat list ordered by start time.
type DayAgenda struct {
	Grid         schedule.Grid       `json:"grid"`
	Appointments []model.Appointment `json:"appointments"`
}

// ScheduleService produces the calendar views from the appointment store.
type ScheduleService struct {
	appointments repository.AppointmentRepository
	directory    repository.UserDirectory
	builder      *schedule.Builder
	logger       *zap.Logger
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(
	appointments repository.AppointmentRepository,
	directory repository.UserDirectory,
	logger *zap.Logger,
) *ScheduleService {
	return &ScheduleService{
		appointments: appointments,
		directory:    directory,
		builder:      schedule.NewBuilder(logger),
		logger:       logger.Named("schedule_service"),
	}
}

// FetchWeekSchedule returns the week grid for the week containing ref.
// Only scheduled appointments appear on the calendar; employeeID "" or "all"
// shows every employee.
func (s *ScheduleService) FetchWeekSchedule(ctx context.Context, companyID string, ref time.Time, employeeID string) (WeekSchedule, error) {
	week := schedule.WeekRange(ref)
	from, _ := schedule.DayBounds(week[0])
	_, to := schedule.DayBounds(week[6])

	appointments, err := s.appointments.Query(ctx, companyID, repository.AppointmentFilter{
		DateRange:  &repository.DateRange{From: from, To: to},
		Status:     model.StatusScheduled,
		EmployeeID: employeeID,
	})
	if err != nil {
		return WeekSchedule{}, fmt.Errorf("query week appointments: %w", err)
	}
	if err := s.joinNames(ctx, appointments); err != nil {
		return WeekSchedule{}, err
	}
	grid := s.builder.BuildWeekGrid(ref, appointments, schedule.WeeklyOptions(employeeID))
	return WeekSchedule{Grid: grid}, nil
}

// FetchDayAgenda returns the agenda for a single day, grid plus a list sorted
// by start time.
func (s *ScheduleService) FetchDayAgenda(ctx context.Context, companyID string, day time.Time, employeeID string) (DayAgenda, error) {
	from, to := schedule.DayBounds(day)

	appointments, err := s.appointments.Query(ctx, companyID, repository.AppointmentFilter{
		DateRange:  &repository.DateRange{From: from, To: to},
		Status:     model.StatusScheduled,
		EmployeeID: employeeID,
	})
	if err != nil {
		return DayAgenda{}, fmt.Errorf("query day appointments: %w", err)
	}
	if err := s.joinNames(ctx, appointments); err != nil {
		return DayAgenda{}, err
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].StartTime < appointments[j].StartTime
	})
	grid := s.builder.BuildDayGrid(day, appointments, schedule.DailyOptions(employeeID))
	return DayAgenda{Grid: grid, Appointments: appointments}, nil
}

// joinNames resolves client and employee display names in one batched
// directory lookup over the distinct id set. Records whose ids have no
// directory entry keep empty names rather than failing the view.
func (s *ScheduleService) joinNames(ctx context.Context, appointments []model.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}
	ids := make([]string, 0, len(appointments)*2)
	for _, a := range appointments {
		ids = append(ids, a.ClientID, a.EmployeeID)
	}
	names, err := s.directory.NamesByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve display names: %w", err)
	}
	for i := range appointments {
		appointments[i].ClientName = names[appointments[i].ClientID]
		appointments[i].EmployeeName = names[appointments[i].EmployeeID]
	}
	return nil
}
