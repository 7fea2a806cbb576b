package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type SalonService interface {
	AvailableTimeSlots(ctx context.Context) ([]domain.OpenSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
