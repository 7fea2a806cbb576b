package metrics

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Metrics набор Prometheus-метрик сервиса
// Каждый экземпляр имеет собственный registry, поэтому метрики можно создавать в тестах
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	clientRequestsTotal   *prometheus.CounterVec
	clientRequestDuration *prometheus.HistogramVec
	formSubmissionsTotal  *prometheus.CounterVec
}

// New создает и регистрирует метрики с меткой service=serviceName
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of served HTTP requests",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		clientRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "salon_api_requests_total",
			Help:        "Total number of outbound salon API requests by outcome",
			ConstLabels: labels,
		}, []string{"endpoint", "outcome"}),
		clientRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "salon_api_request_duration_seconds",
			Help:        "Duration of outbound salon API requests",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint"}),
		formSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "form_submissions_total",
			Help:        "Form submit attempts by outcome",
			ConstLabels: labels,
		}, []string{"form", "outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.clientRequestsTotal,
		m.clientRequestDuration,
		m.formSubmissionsTotal,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// WriteText пишет текущие значения метрик в текстовом формате Prometheus
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// ObserveHTTPRequest учитывает обслуженный входящий запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveClientRequest учитывает исходящий запрос к salon API
func (m *Metrics) ObserveClientRequest(endpoint, outcome string, duration time.Duration) {
	m.clientRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.clientRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// ObserveSubmission учитывает попытку отправки формы
func (m *Metrics) ObserveSubmission(form, outcome string) {
	m.formSubmissionsTotal.WithLabelValues(form, outcome).Inc()
}
