package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonboard/internal/analytics"
	"salonboard/internal/domain/model"
	"salonboard/internal/domain/repository"
	"salonboard/internal/schedule"
	"salonboard/pkg/errors"
)

// CreateAppointment is the booking command. Date is the calendar day;
// StartTime/EndTime are wall-clock labels in "HH:MM" form.
type CreateAppointment struct {
	CompanyID  string    `json:"companyId" validate:"required"`
	ClientID   string    `json:"clientId" validate:"required"`
	EmployeeID string    `json:"employeeId" validate:"required"`
	ServiceID  string    `json:"serviceId" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	StartTime  string    `json:"startTime" validate:"required"`
	EndTime    string    `json:"endTime" validate:"required"`
}

// BookingService handles the appointment write path: creation with a
// booking-time service snapshot, and status transitions.
type BookingService struct {
	appointments repository.AppointmentRepository
	catalog      repository.ServiceRepository
	analytics    *analytics.Service
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewBookingService creates a new booking service.
func NewBookingService(
	appointments repository.AppointmentRepository,
	catalog repository.ServiceRepository,
	analyticsService *analytics.Service,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		appointments: appointments,
		catalog:      catalog,
		analytics:    analyticsService,
		validate:     validator.New(),
		logger:       logger.Named("booking_service"),
	}
}

// Create books an appointment. The catalog service's name, price and duration
// are copied onto the appointment so later catalog edits cannot rewrite
// history.
func (s *BookingService) Create(ctx context.Context, cmd *CreateAppointment) (*model.Appointment, error) {
	if cmd == nil {
		return nil, errors.NewValidationError("command cannot be nil")
	}
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	startHour, startMin, err := schedule.ParseClock(cmd.StartTime)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid start_time: %v", err))
	}
	endHour, endMin, err := schedule.ParseClock(cmd.EndTime)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid end_time: %v", err))
	}
	if startHour*60+startMin >= endHour*60+endMin {
		return nil, errors.NewValidationError("end_time must be after start_time")
	}

	service, err := s.catalog.GetByID(ctx, cmd.CompanyID, cmd.ServiceID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appointment := &model.Appointment{
		ID:         uuid.New().String(),
		CompanyID:  cmd.CompanyID,
		ClientID:   cmd.ClientID,
		EmployeeID: cmd.EmployeeID,
		Service:    service.Snapshot(),
		Date:       cmd.Date,
		StartTime:  cmd.StartTime,
		EndTime:    cmd.EndTime,
		Status:     model.StatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.appointments.Add(ctx, appointment); err != nil {
		return nil, err
	}
	s.invalidateAnalytics(ctx, cmd.CompanyID)
	return appointment, nil
}

// UpdateStatus moves an appointment through its lifecycle. Only scheduled
// appointments can change state; completed and canceled are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if !status.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown status %q", status))
	}
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !appointment.Status.CanTransitionTo(status) {
		return nil, errors.NewConflictError(
			fmt.Sprintf("cannot transition appointment from %s to %s", appointment.Status, status))
	}
	if err := s.appointments.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appointment.Status = status
	s.invalidateAnalytics(ctx, appointment.CompanyID)
	return appointment, nil
}

// Delete removes an appointment record.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateAnalytics(ctx, appointment.CompanyID)
	return nil
}

// invalidateAnalytics drops the cached aggregates after a write. Cache
// failures never fail the booking; the serving path recomputes on miss.
func (s *BookingService) invalidateAnalytics(ctx context.Context, companyID string) {
	if s.analytics == nil {
		return
	}
	if err := s.analytics.Invalidate(ctx, companyID); err != nil {
		s.logger.Warn("failed to invalidate analytics cache",
			zap.String("company_id", companyID), zap.Error(err))
	}
}
