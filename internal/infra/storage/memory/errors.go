package memory

import "errors"

var (
	// ErrSlotTaken возвращается, когда мастер уже занят в это время
	ErrSlotTaken = errors.New("memory.repository: stylist already booked at this time")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("memory.repository: customer not found")

	// ErrPhoneNumberTaken возвращается, когда клиент с таким телефоном уже существует
	ErrPhoneNumberTaken = errors.New("memory.repository: phone number already exists")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("memory.repository: invalid time range")
)
