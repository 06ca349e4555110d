package repository

import (
	"context"

	"salonboard/internal/domain/model"
)

// ServiceRepository reads the company's service catalog. The booking path
// uses it to take the price/duration snapshot embedded into an appointment.
type ServiceRepository interface {
	GetByID(ctx context.Context, companyID, serviceID string) (*model.Service, error)
	ListByCompany(ctx context.Context, companyID string) ([]model.Service, error)
}
