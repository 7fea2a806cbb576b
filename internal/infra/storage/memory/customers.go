package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CustomerRepository хранилище клиентов в памяти процесса
type CustomerRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Customer
	byPhone map[string]string
}

// NewCustomerRepository создает пустое хранилище клиентов
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		byID:    make(map[string]domain.Customer),
		byPhone: make(map[string]string),
	}
}

// Create сохраняет клиента. ID должен быть заполнен вызывающей стороной
func (r *CustomerRepository) Create(ctx context.Context, c domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byPhone[c.PhoneNumber]; exists {
		return fmt.Errorf("%w: %s", ErrPhoneNumberTaken, c.PhoneNumber)
	}

	r.byID[c.ID] = c
	r.byPhone[c.PhoneNumber] = c.ID
	return nil
}

// GetByID возвращает клиента по ID
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: id=%s", ErrCustomerNotFound, id)
	}
	return c, nil
}
