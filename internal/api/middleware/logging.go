package middleware

import (
	"net/http"

	"github.com/felixge/httpsnoop"
)

// RequestIDHeader заголовок с идентификатором запроса от клиента
const RequestIDHeader = "X-Request-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Logging пишет в лог метод, путь, статус и длительность каждого запроса
func Logging(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured := httpsnoop.CaptureMetrics(next, w, r)
			log.Info("%s %s - %d in %s, request_id=%s",
				r.Method, r.URL.Path, captured.Code, captured.Duration, r.Header.Get(RequestIDHeader))
		})
	}
}
