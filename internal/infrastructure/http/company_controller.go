package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salonboard/internal/domain/repository"
	"salonboard/pkg/middleware"
	"salonboard/pkg/response"
)

// CompanyController handles HTTP requests for company resolution and
// membership.
type CompanyController struct {
	companies repository.CompanyRepository
	logger    *zap.Logger
}

// NewCompanyController creates a new company controller.
func NewCompanyController(companies repository.CompanyRepository, logger *zap.Logger) *CompanyController {
	return &CompanyController{
		companies: companies,
		logger:    logger.Named("company_controller"),
	}
}

// ResolveCompany handles GET /users/{userID}/company
func (c *CompanyController) ResolveCompany(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.SendBadRequest(w, r, "User ID is required")
		return
	}

	companyID, err := c.companies.ResolveCompanyID(r.Context(), userID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, map[string]string{"companyId": companyID})
}

// GetCompany handles GET /companies/{companyID}
func (c *CompanyController) GetCompany(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}

	company, err := c.companies.GetByID(r.Context(), companyID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, company)
}

// ListEmployees handles GET /companies/{companyID}/employees
func (c *CompanyController) ListEmployees(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}

	employees, err := c.companies.ListEmployees(r.Context(), companyID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, employees)
}
