package customerform

import (
	"regexp"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

// Field поле формы клиента
type Field string

const (
	FieldFirstName   Field = "firstName"
	FieldLastName    Field = "lastName"
	FieldPhoneNumber Field = "phoneNumber"
)

// Сообщения валидации
const (
	MsgFirstNameRequired   = "First name is required"
	MsgLastNameRequired    = "Last name is required"
	MsgPhoneNumberRequired = "Phone number is required"
	MsgPhoneNumberFormat   = "Only numbers, spaces, and these symbols allowed: ( ) + -"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9+()\- ]*$`)

// Validators правила валидации полей клиента
// Используются формой и сервером-заглушкой salon API
func Validators() validation.Validators[Field] {
	return validation.Validators[Field]{
		FieldFirstName: validation.Required(MsgFirstNameRequired),
		FieldLastName:  validation.Required(MsgLastNameRequired),
		FieldPhoneNumber: validation.List(
			validation.Required(MsgPhoneNumberRequired),
			validation.Match(phoneNumberPattern, MsgPhoneNumberFormat),
		),
	}
}

// Draft черновик клиента
type Draft struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// NewDraft создает черновик из существующего клиента
func NewDraft(c domain.Customer) Draft {
	return Draft{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		PhoneNumber: c.PhoneNumber,
	}
}

// With возвращает копию черновика с новым значением поля
func (d Draft) With(field Field, value string) Draft {
	switch field {
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldPhoneNumber:
		d.PhoneNumber = value
	}
	return d
}

// Values возвращает значения всех полей для валидации
func (d Draft) Values() map[Field]string {
	return map[Field]string{
		FieldFirstName:   d.FirstName,
		FieldLastName:    d.LastName,
		FieldPhoneNumber: d.PhoneNumber,
	}
}

// Customer конвертирует черновик в доменного клиента
func (d Draft) Customer() domain.Customer {
	return domain.Customer{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PhoneNumber: d.PhoneNumber,
	}
}
