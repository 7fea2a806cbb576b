package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	createAppointmentHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_appointment"
	createCustomerHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_customer"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SalonService операции salon API
type SalonService interface {
	AvailableTimeSlots(ctx context.Context) ([]domain.OpenSlot, error)
	CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error)
	CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
	AppointmentsBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)
}

// Metrics метрики HTTP сервера
type Metrics interface {
	middleware.HTTPMetrics
	Handler() http.Handler
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RouterConfig зависимости роутера. Metrics опционален
type RouterConfig struct {
	Service        SalonService
	Logger         Logger
	Metrics        Metrics
	MetricsPath    string
	AllowedOrigins []string
}

// NewRouter собирает роутер salon API с recovery и CORS
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
		r.Handle(cfg.MetricsPath, cfg.Metrics.Handler()).Methods(http.MethodGet)
	}
	r.Use(middleware.Logging(cfg.Logger))

	createAppointment := createAppointmentHandler.NewHandler(cfg.Service, cfg.Logger)
	createCustomer := createCustomerHandler.NewHandler(cfg.Service, cfg.Logger)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(cfg.Service, cfg.Logger)
	getAppointments := getAppointmentsHandler.NewHandler(cfg.Service, cfg.Logger)

	r.HandleFunc("/availableTimeSlots", getAvailableSlots.Handle).Methods(http.MethodGet)
	r.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{from:[0-9]+}-{to:[0-9]+}", getAppointments.Handle).Methods(http.MethodGet)
	r.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)

	corsOptions := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedOrigins(cfg.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	}
	if !allowsAnyOrigin(cfg.AllowedOrigins) {
		corsOptions = append(corsOptions, gorillaHandlers.AllowCredentials())
	}

	recovery := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{cfg.Logger}),
		gorillaHandlers.PrintRecoveryStack(true),
	)

	return recovery(gorillaHandlers.CORS(corsOptions...)(r))
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}

type recoveryLogger struct {
	log Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered: %s", fmt.Sprint(v...))
}
