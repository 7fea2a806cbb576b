package appointmentform

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Submitter сохраняет запись во внешней системе (salonapi.Client)
type Submitter interface {
	CreateAppointment(ctx context.Context, a domain.Appointment) error
}
