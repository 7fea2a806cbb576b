package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvSalonAPIURL = "SALON_API_URL"
	EnvHTTPPort    = "HTTP_PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFile     = "LOG_FILE"
)

// Config конфигурация приложения
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Salon   SalonConfig   `toml:"salon"`
	Client  ClientConfig  `toml:"client"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`

	CORSOrigins []string `toml:"cors_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig справочные данные салона: часы работы, услуги, мастера
type SalonConfig struct {
	OpensAt         int                 `toml:"opens_at"`
	ClosesAt        int                 `toml:"closes_at"`
	Timezone        string              `toml:"timezone"`
	Services        []string            `toml:"services"`
	Stylists        []string            `toml:"stylists"`
	ServiceStylists map[string][]string `toml:"service_stylists"`
}

// ClientConfig настройки клиента salon API
type ClientConfig struct {
	BaseURL           string  `toml:"base_url"`
	Timeout           int     `toml:"timeout"` // секунды
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 5,
			CORSOrigins:     []string{"*"},
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "salon-booking",
		},
		Salon: SalonConfig{
			OpensAt:         domain.DefaultSalonOpensAt,
			ClosesAt:        domain.DefaultSalonClosesAt,
			Timezone:        "Local",
			Services:        domain.DefaultServices(),
			Stylists:        domain.DefaultStylists(),
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 5,
			Burst:   1,
		},
	}
}

// Load загружает конфигурацию: .env -> значения по умолчанию -> TOML файл -> переменные окружения
// Отсутствующий файл не считается ошибкой
func Load(path string) (*Config, error) {
	// .env опционален
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvSalonAPIURL); v != "" {
		cfg.Client.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logs.File = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvHTTPPort, v, err)
		}
		cfg.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Salon.OpensAt < 0 || c.Salon.ClosesAt > 24 || c.Salon.OpensAt >= c.Salon.ClosesAt {
		return fmt.Errorf("salon hours must satisfy 0 <= opens_at < closes_at <= 24, got %d..%d",
			c.Salon.OpensAt, c.Salon.ClosesAt)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Client.BaseURL == "" {
		return errors.New("client.base_url is required")
	}
	if c.Client.Timeout <= 0 {
		return fmt.Errorf("invalid client.timeout %d", c.Client.Timeout)
	}
	if _, err := c.Salon.Location(); err != nil {
		return err
	}
	return nil
}

// Location возвращает часовой пояс салона
func (s SalonConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid salon.timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Catalog возвращает справочник услуг салона
// Справочник из файла заменяет стандартный целиком, стандартный используется только если его нет
func (s SalonConfig) Catalog() domain.ServiceCatalog {
	if s.ServiceStylists == nil {
		return domain.DefaultServiceCatalog()
	}
	return domain.ServiceCatalog(s.ServiceStylists)
}
