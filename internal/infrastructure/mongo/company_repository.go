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

// CompanyRepository implements repository.CompanyRepository on top of the
// companies collection, joining employee names via the user directory.
type CompanyRepository struct {
	collection *mongo.Collection
	directory  *UserDirectory
	logger     *zap.Logger
}

// NewCompanyRepository creates a new MongoDB company repository.
func NewCompanyRepository(database *mongo.Database, directory *UserDirectory, logger *zap.Logger) *CompanyRepository {
	return &CompanyRepository{
		collection: database.Collection("companies"),
		directory:  directory,
		logger:     logger.Named("company_repository"),
	}
}

// ResolveCompanyID returns the id of the company owned by the user.
func (r *CompanyRepository) ResolveCompanyID(ctx context.Context, userID string) (string, error) {
	var doc struct {
		ID string `bson:"_id"`
	}
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", apperrors.NewNotFoundError("company")
		}
		return "", fmt.Errorf("failed to resolve company for user %s: %w", userID, err)
	}
	return doc.ID, nil
}

// GetByID retrieves a company document.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
	var company model.Company
	err := withRetry(ctx, func() error {
		return r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&company)
	})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.NewNotFoundError("company")
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// ListEmployees resolves the company's employee id list to named employees
// with a single batched directory lookup. Ids missing from the directory are
// skipped rather than failing the listing.
func (r *CompanyRepository) ListEmployees(ctx context.Context, companyID string) ([]model.Employee, error) {
	company, err := r.GetByID(ctx, companyID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return []model.Employee{}, nil
		}
		return nil, err
	}
	if len(company.EmployeeIDs) == 0 {
		return []model.Employee{}, nil
	}

	names, err := r.directory.NamesByIDs(ctx, company.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	employees := make([]model.Employee, 0, len(company.EmployeeIDs))
	for _, id := range company.EmployeeIDs {
		name, ok := names[id]
		if !ok {
			r.logger.Warn("employee id without directory entry",
				zap.String("company_id", companyID), zap.String("employee_id", id))
			continue
		}
		employees = append(employees, model.Employee{ID: id, Name: name})
	}
	return employees, nil
}
