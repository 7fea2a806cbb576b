package customerform

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Submitter сохраняет клиента во внешней системе (salonapi.Client)
type Submitter interface {
	CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
}
