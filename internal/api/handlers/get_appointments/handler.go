package get_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salon"
)

const (
	msgInvalidFrom  = "invalid range start, expected milliseconds since epoch"
	msgInvalidTo    = "invalid range end, expected milliseconds since epoch"
	msgInvalidRange = "range start must not be after range end"
)

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

// Handle GET /appointments/{from}-{to}
// from и to - миллисекунды Unix, границы включительно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	fromMs, err := strconv.ParseInt(vars["from"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{from}-{to} - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	toMs, err := strconv.ParseInt(vars["to"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{from}-{to} - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	items, err := h.service.AppointmentsBetween(r.Context(), time.UnixMilli(fromMs), time.UnixMilli(toMs))
	if err != nil {
		switch {
		case errors.Is(err, salon.ErrInvalidTimeRange):
			h.logger.Warn("GET /appointments/{from}-{to} - Invalid range: %d-%d", fromMs, toMs)
			handlers.RespondBadRequest(w, msgInvalidRange)
		default:
			h.logger.Error("GET /appointments/{from}-{to} - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromDomainList(items)

	h.logger.Info("GET /appointments/{from}-{to} - Returned %d appointments", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
