package salonapi

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRequest тело POST /appointments
type AppointmentRequest struct {
	Service  string `json:"service"`
	Stylist  string `json:"stylist"`
	StartsAt *int64 `json:"startsAt,omitempty"` // миллисекунды Unix
	Customer string `json:"customer,omitempty"`
}

// AppointmentResponse элемент списка GET /appointments/{from}-{to}
type AppointmentResponse struct {
	Service  string `json:"service"`
	Stylist  string `json:"stylist"`
	StartsAt int64  `json:"startsAt"`
	Customer string `json:"customer,omitempty"`
}

// Customer тело запроса и ответа /customers
type Customer struct {
	ID          string `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// OpenSlot элемент ответа GET /availableTimeSlots
type OpenSlot struct {
	StartsAt int64    `json:"startsAt"`
	Stylists []string `json:"stylists,omitempty"`
}

// ErrorsResponse тело ответа 422
type ErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// FromDomainAppointment конвертирует доменную запись в тело запроса
func FromDomainAppointment(a domain.Appointment) AppointmentRequest {
	req := AppointmentRequest{
		Service:  a.Service,
		Stylist:  a.Stylist,
		Customer: a.Customer,
	}
	if a.HasStartTime() {
		ms := a.StartsAt.UnixMilli()
		req.StartsAt = &ms
	}
	return req
}

// ToDomain конвертирует элемент списка записей
func (r AppointmentResponse) ToDomain(loc *time.Location) domain.Appointment {
	return domain.Appointment{
		Service:  r.Service,
		Stylist:  r.Stylist,
		StartsAt: time.UnixMilli(r.StartsAt).In(loc),
		Customer: r.Customer,
	}
}

// FromDomainCustomer конвертирует доменного клиента
func FromDomainCustomer(c domain.Customer) Customer {
	return Customer{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}

// ToDomain конвертирует клиента в доменную модель
func (c Customer) ToDomain() domain.Customer {
	return domain.Customer{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}

// ToDomain конвертирует свободный слот в доменную модель
func (s OpenSlot) ToDomain(loc *time.Location) domain.OpenSlot {
	return domain.OpenSlot{
		StartsAt: time.UnixMilli(s.StartsAt).In(loc),
		Stylists: s.Stylists,
	}
}
