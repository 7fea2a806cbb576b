package get_appointments

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// AppointmentResponse элемент списка записей
type AppointmentResponse struct {
	Service  string `json:"service"`
	Stylist  string `json:"stylist"`
	StartsAt int64  `json:"startsAt"` // миллисекунды Unix
	Customer string `json:"customer,omitempty"`
}

// FromDomainList конвертирует записи в HTTP ответ, пустой список остается массивом
func FromDomainList(items []domain.Appointment) []AppointmentResponse {
	response := make([]AppointmentResponse, len(items))
	for i, a := range items {
		response[i] = AppointmentResponse{
			Service:  a.Service,
			Stylist:  a.Stylist,
			StartsAt: a.StartsAt.UnixMilli(),
			Customer: a.Customer,
		}
	}
	return response
}
