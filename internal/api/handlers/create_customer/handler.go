package create_customer

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

// Handle POST /customers
// Возвращает сохраненного клиента вместе с присвоенным id
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.CreateCustomer(r.Context(), req.ToDomain())
	if err != nil {
		var vErr *salon.ValidationError
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /customers - Rejected: %v", err)
			handlers.RespondValidationErrors(w, vErr.Fields)
		default:
			h.logger.Error("POST /customers - Failed to create customer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created: id=%s", saved.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(saved))
}
