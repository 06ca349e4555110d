package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salonboard/pkg/middleware"
	"salonboard/pkg/response"
)

// Controllers bundles the HTTP controllers mounted by the router.
type Controllers struct {
	Company     *CompanyController
	Schedule    *ScheduleController
	Analytics   *AnalyticsController
	Appointment *AppointmentController
}

// NewRouter builds the HTTP surface: request-id, logging, panic recovery and
// a per-request timeout around the versioned API routes.
func NewRouter(c Controllers, logger *zap.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		response.SendSuccess(w, req, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users/{userID}/company", c.Company.ResolveCompany)

		r.Route("/companies/{companyID}", func(r chi.Router) {
			r.Get("/", c.Company.GetCompany)
			r.Get("/employees", c.Company.ListEmployees)

			r.Get("/schedule/week", c.Schedule.GetWeekSchedule)
			r.Get("/schedule/day", c.Schedule.GetDayAgenda)

			r.Get("/analytics/revenue", c.Analytics.GetMonthlyRevenue)
			r.Get("/analytics/revenue/semester", c.Analytics.GetSemesterRevenue)
			r.Get("/analytics/semester-options", c.Analytics.GetSemesterOptions)
			r.Get("/analytics/top-services", c.Analytics.GetTopServices)

			r.Post("/appointments", c.Appointment.CreateAppointment)
			r.Patch("/appointments/{id}/status", c.Appointment.UpdateAppointmentStatus)
			r.Delete("/appointments/{id}", c.Appointment.DeleteAppointment)
		})
	})

	return r
}
