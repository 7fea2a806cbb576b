package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	salonService "github.com/m04kA/SMC-SalonBooking/internal/service/salon"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting salon API stub...")

	location, err := cfg.Salon.Location()
	if err != nil {
		log.Fatal("Invalid salon timezone: %v", err)
	}

	// Инициализируем хранилища и сервис
	svc := salonService.NewService(
		memory.NewAppointmentRepository(),
		memory.NewCustomerRepository(),
		salonService.Settings{
			OpensAt:  cfg.Salon.OpensAt,
			ClosesAt: cfg.Salon.ClosesAt,
			Services: cfg.Salon.Services,
			Stylists: cfg.Salon.Stylists,
			Catalog:  cfg.Salon.Catalog(),
			Location: location,
		},
		&salonService.RealTimeProvider{},
		log,
	)
	log.Info("Salon configured: hours %d..%d, %d services, %d stylists, timezone=%s",
		cfg.Salon.OpensAt, cfg.Salon.ClosesAt, len(cfg.Salon.Services), len(cfg.Salon.Stylists), location)

	routerCfg := api.RouterConfig{
		Service:        svc,
		Logger:         log,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.Server.CORSOrigins,
	}

	// Инициализируем метрики (если включены)
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(routerCfg),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
