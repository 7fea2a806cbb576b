package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository хранилище записей в памяти процесса
type AppointmentRepository struct {
	mu    sync.RWMutex
	items []domain.Appointment
}

// NewAppointmentRepository создает пустое хранилище записей
func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Create сохраняет запись. Проверка занятости мастера и вставка выполняются атомарно
func (r *AppointmentRepository) Create(ctx context.Context, a domain.Appointment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.Stylist == a.Stylist && existing.StartsAt.Equal(a.StartsAt) {
			return fmt.Errorf("%w: stylist=%s, starts_at=%s", ErrSlotTaken, a.Stylist, a.StartsAt.Format(time.RFC3339))
		}
	}

	r.items = append(r.items, a)
	return nil
}

// ListBetween возвращает записи с началом в [from, to] в хронологическом порядке
func (r *AppointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Appointment, 0)
	for _, a := range r.items {
		if a.StartsAt.Before(from) || a.StartsAt.After(to) {
			continue
		}
		result = append(result, a)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartsAt.Before(result[j].StartsAt)
	})
	return result, nil
}
