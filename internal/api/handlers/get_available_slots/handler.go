package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
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

// Handle GET /availableTimeSlots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.AvailableTimeSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /availableTimeSlots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromDomainList(slots)

	h.logger.Info("GET /availableTimeSlots - Returned %d slots", len(response))
	handlers.RespondJSON(w, http.StatusOK, response)
}
