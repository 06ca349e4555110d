package repository

import (
	"context"

	"salonboard/internal/domain/model"
)

// CompanyRepository resolves company ownership and membership.
type CompanyRepository interface {
	// ResolveCompanyID returns the id of the company owned by the given user.
	ResolveCompanyID(ctx context.Context, userID string) (string, error)
	GetByID(ctx context.Context, id string) (*model.Company, error)
	// ListEmployees resolves the company's employee id list to named
	// employees in a single batched lookup.
	ListEmployees(ctx context.Context, companyID string) ([]model.Employee, error)
}

// UserDirectory joins employee/client id references to display names.
// Implementations batch the lookup; callers pass the full distinct id set at
// once instead of resolving per record.
type UserDirectory interface {
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}
