package salon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation возвращается (через ValidationError), когда поля запроса не прошли проверку
	ErrValidation = errors.New("salon service: validation failed")

	// ErrInvalidTimeRange возвращается при некорректном диапазоне дат
	ErrInvalidTimeRange = errors.New("salon service: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("salon service: internal error")
)

// Сообщения об ошибках полей, которые проверяются только на сервере
const (
	MsgUnknownService      = "Unknown salon service"
	MsgStylistCannotServe  = "Stylist does not perform this service"
	MsgUnknownCustomer     = "Unknown customer"
	MsgSlotUnavailable     = "Slot is no longer available"
	MsgNoStylistAvailable  = "No stylist is available for this service at this time"
	MsgPhoneNumberConflict = "Phone number already exists in the system"
)

// ValidationError ошибки полей, возвращаемые клиенту с кодом 422
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
