package appointmentform

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Field поле формы записи
type Field string

const (
	FieldService  Field = "service"
	FieldStylist  Field = "stylist"
	FieldStartsAt Field = "startsAt"
	FieldCustomer Field = "customer"
)

// Draft черновик записи. Время начала в строковом представлении - миллисекунды Unix
type Draft struct {
	Service  string
	Stylist  string
	StartsAt time.Time
	Customer string

	location *time.Location
}

// NewDraft создает черновик из существующей записи; location задает пояс для startsAt
func NewDraft(a domain.Appointment, location *time.Location) Draft {
	if location == nil {
		location = time.Local
	}
	d := Draft{
		Service:  a.Service,
		Stylist:  a.Stylist,
		Customer: a.Customer,
		location: location,
	}
	if a.HasStartTime() {
		d.StartsAt = a.StartsAt.In(location)
	}
	return d
}

// With возвращает копию черновика с новым значением поля
// Нечисловое значение startsAt сбрасывает выбранный слот
func (d Draft) With(field Field, value string) Draft {
	switch field {
	case FieldService:
		d.Service = value
	case FieldStylist:
		d.Stylist = value
	case FieldStartsAt:
		d.StartsAt = parseMillis(value, d.location)
	case FieldCustomer:
		d.Customer = value
	}
	return d
}

// Values возвращает значения всех полей для валидации
func (d Draft) Values() map[Field]string {
	return map[Field]string{
		FieldService:  d.Service,
		FieldStylist:  d.Stylist,
		FieldStartsAt: formatMillis(d.StartsAt),
		FieldCustomer: d.Customer,
	}
}

// Appointment конвертирует черновик в доменную запись
func (d Draft) Appointment() domain.Appointment {
	return domain.Appointment{
		Service:  d.Service,
		Stylist:  d.Stylist,
		StartsAt: d.StartsAt,
		Customer: d.Customer,
	}
}

func formatMillis(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseMillis(value string, location *time.Location) time.Time {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}
	}
	if location == nil {
		location = time.Local
	}
	return time.UnixMilli(ms).In(location)
}
