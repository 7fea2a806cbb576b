package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Названия эндпоинтов для метрик
const (
	endpointCreateAppointment  = "create_appointment"
	endpointCreateCustomer     = "create_customer"
	endpointAvailableTimeSlots = "available_time_slots"
	endpointAppointments       = "appointments"
)

// Исходы запросов для метрик
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// Client клиент для работы с salon API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	location   *time.Location
	log        Logger
	metrics    Metrics
}

// Option настройка клиента
type Option func(*Client)

// WithRateLimit ограничивает частоту исходящих запросов
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}
}

// WithLocation задает часовой пояс, в котором возвращаются времена
func WithLocation(loc *time.Location) Option {
	return func(c *Client) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithMetrics подключает учет запросов
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithHTTPClient подменяет HTTP клиент (таймаут и cookie jar не выставляются)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient создает новый экземпляр клиента salon API
// Cookie сессии переносятся между запросами, как у браузера на том же origin
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	// cookiejar.New возвращает ошибку только при невалидных опциях
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		location: time.Local,
		log:      log,
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateAppointment сохраняет запись. Тело успешного ответа не используется
func (c *Client) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	url := fmt.Sprintf("%s/appointments", c.baseURL)

	err := c.do(ctx, endpointCreateAppointment, http.MethodPost, url, FromDomainAppointment(a), nil)
	if err != nil {
		return err
	}

	c.log.Info("Appointment saved: service=%s, stylist=%s, starts_at=%s", a.Service, a.Stylist, a.StartsAt.Format(time.RFC3339))
	return nil
}

// CreateCustomer сохраняет клиента и возвращает запись, эхом отданную сервером (с id)
func (c *Client) CreateCustomer(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	url := fmt.Sprintf("%s/customers", c.baseURL)

	var saved Customer
	if err := c.do(ctx, endpointCreateCustomer, http.MethodPost, url, FromDomainCustomer(customer), &saved); err != nil {
		return domain.Customer{}, err
	}

	c.log.Info("Customer saved: id=%s", saved.ID)
	return saved.ToDomain(), nil
}

// GetAvailableTimeSlots получает свободные слоты
func (c *Client) GetAvailableTimeSlots(ctx context.Context) ([]domain.OpenSlot, error) {
	url := fmt.Sprintf("%s/availableTimeSlots", c.baseURL)

	var slots []OpenSlot
	if err := c.do(ctx, endpointAvailableTimeSlots, http.MethodGet, url, nil, &slots); err != nil {
		return nil, err
	}

	result := make([]domain.OpenSlot, len(slots))
	for i, s := range slots {
		result[i] = s.ToDomain(c.location)
	}
	return result, nil
}

// GetAppointments получает записи за календарный день day (в часовом поясе day)
// Диапазон: с 00:00:00.000 до 23:59:59.999 включительно
func (c *Client) GetAppointments(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	to := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), day.Location())

	url := fmt.Sprintf("%s/appointments/%d-%d", c.baseURL, from.UnixMilli(), to.UnixMilli())

	var items []AppointmentResponse
	if err := c.do(ctx, endpointAppointments, http.MethodGet, url, nil, &items); err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, len(items))
	for i, item := range items {
		result[i] = item.ToDomain(c.location)
	}
	return result, nil
}

// do выполняет запрос и разбирает ответ в out (если out != nil)
func (c *Client) do(ctx context.Context, endpoint, method, url string, body interface{}, out interface{}) error {
	start := time.Now()
	outcome := outcomeFailed
	defer func() {
		c.metrics.ObserveClientRequest(endpoint, outcome, time.Since(start))
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Salon API %s %s failed, request_id=%s: %v", method, url, requestID, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var errResp ErrorsResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || len(errResp.Errors) == 0 {
			return fmt.Errorf("%w: 422 without field errors", ErrUnexpectedStatus)
		}
		outcome = outcomeRejected
		c.log.Info("Salon API rejected %s %s, request_id=%s, fields=%d", method, url, requestID, len(errResp.Errors))
		return &ValidationError{Fields: errResp.Errors}
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Salon API %s %s returned %d, request_id=%s", method, url, resp.StatusCode, requestID)
		return fmt.Errorf("%w: status code %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(respBody))
	}

	if out != nil {
		// Парсим ответ
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	outcome = outcomeOK
	return nil
}
