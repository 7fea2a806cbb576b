package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Service  string `json:"service"`
	Stylist  string `json:"stylist"`
	StartsAt *int64 `json:"startsAt,omitempty"` // миллисекунды Unix
	Customer string `json:"customer,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	Service  string `json:"service"`
	Stylist  string `json:"stylist"`
	StartsAt int64  `json:"startsAt"`
	Customer string `json:"customer,omitempty"`
}

// ToDomain конвертирует HTTP запрос в доменную запись
// Отсутствующее время остается нулевым, его отклонит валидация сервиса
func (r *CreateAppointmentRequest) ToDomain() domain.Appointment {
	a := domain.Appointment{
		Service:  r.Service,
		Stylist:  r.Stylist,
		Customer: r.Customer,
	}
	if r.StartsAt != nil {
		a.StartsAt = time.UnixMilli(*r.StartsAt).UTC()
	}
	return a
}

// FromDomain конвертирует доменную запись в HTTP ответ
func FromDomain(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		Service:  a.Service,
		Stylist:  a.Stylist,
		StartsAt: a.StartsAt.UnixMilli(),
		Customer: a.Customer,
	}
}
