package create_customer

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type SalonService interface {
	CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
