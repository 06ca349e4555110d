package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"salonboard/internal/application/services"
	"salonboard/internal/domain/model"
	"salonboard/pkg/middleware"
	"salonboard/pkg/response"
)

// AppointmentController handles HTTP requests for the booking write path.
type AppointmentController struct {
	service *services.BookingService
	logger  *zap.Logger
}

// NewAppointmentController creates a new appointment controller.
func NewAppointmentController(service *services.BookingService, logger *zap.Logger) *AppointmentController {
	return &AppointmentController{
		service: service,
		logger:  logger.Named("appointment_controller"),
	}
}

// CreateAppointment handles POST /companies/{companyID}/appointments
func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")
	if companyID == "" {
		response.SendBadRequest(w, r, "Company ID is required")
		return
	}

	var cmd services.CreateAppointment
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}
	cmd.CompanyID = companyID

	appointment, err := c.service.Create(r.Context(), &cmd)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendCreated(w, r, appointment)
}

// UpdateAppointmentStatus handles PATCH /companies/{companyID}/appointments/{id}/status
func (c *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")
	if appointmentID == "" {
		response.SendBadRequest(w, r, "Appointment ID is required")
		return
	}

	var body struct {
		Status model.AppointmentStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.SendBadRequest(w, r, "Invalid request body")
		return
	}

	appointment, err := c.service.UpdateStatus(r.Context(), appointmentID, body.Status)
	if err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, appointment)
}

// DeleteAppointment handles DELETE /companies/{companyID}/appointments/{id}
func (c *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, "id")
	if appointmentID == "" {
		response.SendBadRequest(w, r, "Appointment ID is required")
		return
	}

	if err := c.service.Delete(r.Context(), appointmentID); err != nil {
		middleware.HandleError(w, r, c.logger, err)
		return
	}

	response.SendSuccess(w, r, nil)
}
