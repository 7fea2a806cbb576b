package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type SalonService interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
