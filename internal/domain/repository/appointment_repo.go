package repository

import (
	"context"
	"time"

	"salonboard/internal/domain/model"
)

// DateRange bounds a query on the appointment calendar day, inclusive on both
// ends.
type DateRange struct {
	From time.Time
	To   time.Time
}

// AppointmentFilter narrows a company-scoped appointment query. Zero values
// mean "no constraint"; an empty EmployeeID matches every employee.
type AppointmentFilter struct {
	DateRange  *DateRange
	Status     model.AppointmentStatus
	EmployeeID string
}

// AppointmentRepository is the document-store collaborator for appointment
// records. Query returns a point-in-time snapshot: updates made after the
// call are invisible until the query is re-issued.
type AppointmentRepository interface {
	Query(ctx context.Context, companyID string, filter AppointmentFilter) ([]model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	Add(ctx context.Context, appointment *model.Appointment) error
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error
	Delete(ctx context.Context, id string) error
}
