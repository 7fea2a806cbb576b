package form

import "context"

// Draft is the record backing a form. Implementations have a fixed set of fields and
// value semantics: With returns an updated copy and leaves the receiver untouched.
type Draft[F ~string, D any] interface {
	With(field F, value string) D
	Values() map[F]string
}

// SubmitFunc sends the draft to the remote system and returns what it echoed back.
type SubmitFunc[D any, R any] func(ctx context.Context, draft D) (R, error)

// FieldRejection is implemented by submission errors carrying per-field messages from
// the server.
type FieldRejection interface {
	error
	FieldErrors() map[string]string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics records submit outcomes.
type Metrics interface {
	ObserveSubmission(form, outcome string)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) ObserveSubmission(string, string) {}
