package model

import "time"

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Valid reports whether the value is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
// Only scheduled appointments move; completed and canceled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return s == StatusScheduled && (next == StatusCompleted || next == StatusCanceled)
}

// ServiceSnapshot is the price/duration copy taken when the appointment is
// booked. It is deliberately decoupled from later edits to the catalog
// service definition.
type ServiceSnapshot struct {
	Name            string  `bson:"name" json:"name"`
	Price           float64 `bson:"price" json:"price"`
	DurationMinutes int     `bson:"duration_minutes" json:"durationMinutes"`
}

// Appointment is a booked service occurrence for a client with a given
// employee, date and time range. StartTime/EndTime are wall-clock labels in
// "HH:MM" form; the stored documents do not guarantee that the range matches
// the snapshot duration, and consumers must not assume it does.
type Appointment struct {
	ID         string            `bson:"_id" json:"id"`
	CompanyID  string            `bson:"company_id" json:"companyId"`
	ClientID   string            `bson:"client_id" json:"clientId"`
	EmployeeID string            `bson:"employee_id" json:"employeeId"`
	Service    ServiceSnapshot   `bson:"service" json:"service"`
	Date       time.Time         `bson:"date" json:"date"`
	StartTime  string            `bson:"start_time" json:"startTime"`
	EndTime    string            `bson:"end_time" json:"endTime"`
	Status     AppointmentStatus `bson:"status" json:"status"`
	CreatedAt  time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updatedAt"`

	// Display names joined from the user directory after the fetch; never
	// persisted with the appointment document.
	ClientName   string `bson:"-" json:"clientName,omitempty"`
	EmployeeName string `bson:"-" json:"employeeName,omitempty"`
}
