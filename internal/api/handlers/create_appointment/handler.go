package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salon"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.CreateAppointment(r.Context(), req.ToDomain())
	if err != nil {
		var vErr *salon.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /appointments - Rejected: %v", err)
			handlers.RespondValidationErrors(w, vErr.Fields)
		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: service=%s, stylist=%s", saved.Service, saved.Stylist)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(saved))
}
