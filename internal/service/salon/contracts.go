package salon

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс хранилища записей
type AppointmentRepository interface {
	Create(ctx context.Context, a domain.Appointment) error
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
}

// CustomerRepository интерфейс хранилища клиентов
type CustomerRepository interface {
	Create(ctx context.Context, c domain.Customer) error
	GetByID(ctx context.Context, id string) (domain.Customer, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
