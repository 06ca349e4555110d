package model

import "time"

// Service is a catalog entry owned by a company. Appointments copy its name,
// price and duration into a ServiceSnapshot at booking time.
type Service struct {
	ID              string    `bson:"_id" json:"id"`
	CompanyID       string    `bson:"company_id" json:"companyId"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	Category        string    `bson:"category" json:"category"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Snapshot returns the booking-time copy embedded into an appointment.
func (s Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}
