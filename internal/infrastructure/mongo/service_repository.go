package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonboard/internal/domain/model"
	apperrors "salonboard/pkg/errors"
)

// ServiceRepository implements repository.ServiceRepository on top of the
// services collection.
type ServiceRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewServiceRepository creates a new MongoDB service catalog repository.
func NewServiceRepository(database *mongo.Database, logger *zap.Logger) *ServiceRepository {
	return &ServiceRepository{
		collection: database.Collection("services"),
		logger:     logger.Named("service_repository"),
	}
}

// GetByID retrieves a catalog service scoped to its owning company.
func (r *ServiceRepository) GetByID(ctx context.Context, companyID, serviceID string) (*model.Service, error) {
	var service model.Service
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": serviceID, "company_id": companyID}).Decode(&service)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFoundError("service")
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

// ListByCompany returns the company's full service catalog.
func (r *ServiceRepository) ListByCompany(ctx context.Context, companyID string) ([]model.Service, error) {
	var services []model.Service
	err := withRetry(ctx, func() error {
		cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID})
		if err != nil {
			return fmt.Errorf("failed to query services: %w", err)
		}
		defer cursor.Close(ctx)

		services = services[:0]
		for cursor.Next(ctx) {
			var service model.Service
			if err := cursor.Decode(&service); err != nil {
				r.logger.Warn("skipping undecodable service document",
					zap.String("company_id", companyID), zap.Error(err))
				continue
			}
			services = append(services, service)
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}
	return services, nil
}
