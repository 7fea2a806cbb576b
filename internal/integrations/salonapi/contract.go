package salonapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета исходящих запросов
type Metrics interface {
	ObserveClientRequest(endpoint, outcome string, duration time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveClientRequest(string, string, time.Duration) {}
