package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salonboard/internal/application/services"
	"salonboard/pkg/middleware"
	"salonboard/pkg/response"
)

// ScheduleController handles HTTP requests for the calendar views.
type ScheduleController struct {
	service *services.ScheduleService
	logger  *zap.Logger
}

// NewScheduleController creates a new schedule controller.
func NewScheduleController(service *services.ScheduleService, logger *zap.Logger) *ScheduleController {
	return &ScheduleController{
		service: service,
		logger:  logger.Named("schedule_controller"),
	}
}

// GetWeekSchedule handles GET /companies/{companyID}/schedule/week
// Query parameters: date (YYYY-MM-DD, defaults to today), employeeId
// ("" or "all" for every employee).
func (c *ScheduleController) GetWeekSchedule(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}
	ref, ok := parseDateParam(w, r, time.Now())
	if !ok {
		return
	}
	employeeID := r.URL.Query().Get("employeeId")

	week, err := c.service.FetchWeekSchedule(r.Context(), companyID, ref, employeeID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, week)
}

// GetDayAgenda handles GET /companies/{companyID}/schedule/day
// Query parameters: date (YYYY-MM-DD, defaults to today), employeeId.
func (c *ScheduleController) GetDayAgenda(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}
	day, ok := parseDateParam(w, r, time.Now())
	if !ok {
		return
	}
	employeeID := r.URL.Query().Get("employeeId")

	agenda, err := c.service.FetchDayAgenda(r.Context(), companyID, day, employeeID)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, agenda)
}

// parseDateParam reads the optional date query parameter. On a malformed
// value it writes a 400 response and reports false.
func parseDateParam(w http.ResponseWriter, r *http.Request, fallback time.Time) (time.Time, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return fallback, true
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.SendBadRequest(w, r, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}
