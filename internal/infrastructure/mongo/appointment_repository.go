package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"salonboard/internal/domain/model"
	"salonboard/internal/domain/repository"
	apperrors "salonboard/pkg/errors"
)

// AppointmentRepository implements repository.AppointmentRepository on top of
// the appointments collection.
type AppointmentRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewAppointmentRepository creates a new MongoDB appointment repository.
func NewAppointmentRepository(database *mongo.Database, logger *zap.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		collection: database.Collection("appointments"),
		logger:     logger.Named("appointment_repository"),
	}
}

// Query returns a point-in-time snapshot of the company's appointments
// matching the filter. Documents that fail to decode are skipped and logged;
// only store-level failures propagate.
func (r *AppointmentRepository) Query(ctx context.Context, companyID string, filter repository.AppointmentFilter) ([]model.Appointment, error) {
	query := bson.M{"company_id": companyID}
	if filter.DateRange != nil {
		query["date"] = bson.M{
			"$gte": filter.DateRange.From,
			"$lte": filter.DateRange.To,
		}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.EmployeeID != "" && filter.EmployeeID != "all" {
		query["employee_id"] = filter.EmployeeID
	}

	var appointments []model.Appointment
	err := withRetry(ctx, func() error {
		cursor, err := r.collection.Find(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to query appointments: %w", err)
		}
		defer cursor.Close(ctx)

		appointments = appointments[:0]
		for cursor.Next(ctx) {
			var appt model.Appointment
			if err := cursor.Decode(&appt); err != nil {
				r.logger.Warn("skipping undecodable appointment document",
					zap.String("company_id", companyID), zap.Error(err))
				continue
			}
			appointments = append(appointments, appt)
		}
		return cursor.Err()
	})
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// GetByID retrieves a single appointment.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	var appt model.Appointment
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appt)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFoundError("appointment")
		}
		return nil, err
	}
	return &appt, nil
}

// Add inserts a new appointment document.
func (r *AppointmentRepository) Add(ctx context.Context, appointment *model.Appointment) error {
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	return withRetry(ctx, func() error {
		_, err := r.collection.InsertOne(ctx, appointment)
		if err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}
		return nil
	})
}

// UpdateStatus partially updates the appointment's status field.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	var matched int64
	err := withRetry(ctx, func() error {
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			return fmt.Errorf("failed to update appointment status: %w", err)
		}
		matched = result.MatchedCount
		return nil
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return apperrors.NewNotFoundError("appointment")
	}
	return nil
}

// Delete removes an appointment document.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	var deleted int64
	err := withRetry(ctx, func() error {
		result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("failed to delete appointment: %w", err)
		}
		deleted = result.DeletedCount
		return nil
	})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.NewNotFoundError("appointment")
	}
	return nil
}
