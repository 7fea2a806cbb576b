package salonapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrTransport возвращается, когда запрос не дошел до сервера или ответ не получен
	ErrTransport = errors.New("salonapi client: transport error")

	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сериализация)
	ErrInternal = errors.New("salonapi client: internal error")

	// ErrUnexpectedStatus возвращается при статусе ответа, который клиент не умеет обработать
	ErrUnexpectedStatus = errors.New("salonapi client: unexpected status")

	// ErrInvalidResponse возвращается, когда тело успешного ответа не удалось разобрать
	ErrInvalidResponse = errors.New("salonapi client: invalid response")

	// ErrValidation возвращается (через ValidationError), когда сервер отклонил поля запроса (422)
	ErrValidation = errors.New("salonapi client: field validation failed")
)

// ValidationError ошибки валидации полей, полученные от сервера в ответе 422
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

// FieldErrors возвращает сообщения сервера по полям
func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
