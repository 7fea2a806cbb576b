package appointmentform

import "errors"

var (
	// ErrTodayRequired возвращается, если в конфигурации не задана опорная дата
	ErrTodayRequired = errors.New("appointment form: today is required")

	// ErrSubmitterRequired возвращается, если не задан Submitter
	ErrSubmitterRequired = errors.New("appointment form: submitter is required")

	// ErrSlotUnavailable возвращается при выборе слота, который не отображается как свободный
	ErrSlotUnavailable = errors.New("appointment form: slot is not available")
)
