package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salonboard/internal/analytics"
	"salonboard/pkg/middleware"
	"salonboard/pkg/response"
)

// AnalyticsController handles HTTP requests for the revenue and popularity
// views.
type AnalyticsController struct {
	service *analytics.Service
	logger  *zap.Logger
}

// NewAnalyticsController creates a new analytics controller.
func NewAnalyticsController(service *analytics.Service, logger *zap.Logger) *AnalyticsController {
	return &AnalyticsController{
		service: service,
		logger:  logger.Named("analytics_controller"),
	}
}

// GetMonthlyRevenue handles GET /companies/{companyID}/analytics/revenue
// Query parameters: year (defaults to the current year).
func (c *AnalyticsController) GetMonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.SendBadRequest(w, r, "Invalid year")
			return
		}
		year = parsed
	}

	revenue, err := c.service.FetchRevenueByMonth(r.Context(), companyID, year)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, revenue)
}

// GetSemesterRevenue handles GET /companies/{companyID}/analytics/revenue/semester
// Query parameters: year (defaults to the current year), semester (1 or 2).
func (c *AnalyticsController) GetSemesterRevenue(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.SendBadRequest(w, r, "Invalid year")
			return
		}
		year = parsed
	}
	semester, err := strconv.Atoi(r.URL.Query().Get("semester"))
	if err != nil || (semester != 1 && semester != 2) {
		response.SendBadRequest(w, r, "Semester must be 1 or 2")
		return
	}

	revenue, err := c.service.FetchSemesterRevenue(r.Context(), companyID, year, semester)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, revenue)
}

// GetSemesterOptions handles GET /companies/{companyID}/analytics/semester-options
func (c *AnalyticsController) GetSemesterOptions(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}

	options, err := c.service.FetchSemesterOptions(r.Context(), companyID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, options)
}

// GetTopServices handles GET /companies/{companyID}/analytics/top-services
// Query parameters: year (optional), month (0-11, honored only with year).
func (c *AnalyticsController) GetTopServices(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}

	var filter analytics.RankingFilter
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.SendBadRequest(w, r, "Invalid year")
			return
		}
		filter.Year = &parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 11 {
			response.SendBadRequest(w, r, "Month must be between 0 and 11")
			return
		}
		filter.Month = &parsed
	}

	rankings, err := c.service.FetchTopServices(r.Context(), companyID, filter)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, rankings)
}
