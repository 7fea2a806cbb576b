package create_customer

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// CreateCustomerRequest HTTP request model
// id клиента присваивает сервер, поэтому в запросе его нет
type CreateCustomerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// CustomerResponse HTTP response model
type CustomerResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToDomain конвертирует HTTP запрос в доменного клиента
func (r *CreateCustomerRequest) ToDomain() domain.Customer {
	return domain.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

// FromDomain конвертирует сохраненного клиента в HTTP ответ
func FromDomain(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}
