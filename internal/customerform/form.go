package customerform

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/form"
	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

// FormName имя формы в логах и метриках
const FormName = "customer"

// Config параметры формы клиента. Submitter обязателен
type Config struct {
	Original  domain.Customer
	Submitter Submitter
	// OnSave получает клиента, возвращенного сервером (с id)
	OnSave  func(domain.Customer)
	Logger  form.Logger
	Metrics form.Metrics
}

// Form форма клиента
type Form struct {
	ctrl *form.Controller[Field, Draft, domain.Customer]
}

// New создает форму клиента
func New(cfg Config) (*Form, error) {
	if cfg.Submitter == nil {
		return nil, ErrSubmitterRequired
	}

	submitter := cfg.Submitter
	submit := func(ctx context.Context, d Draft) (domain.Customer, error) {
		return submitter.CreateCustomer(ctx, d.Customer())
	}

	return &Form{
		ctrl: form.New(form.Config[Field, Draft, domain.Customer]{
			Name:       FormName,
			Draft:      NewDraft(cfg.Original),
			Validators: Validators(),
			Submit:     submit,
			OnSave:     cfg.OnSave,
			Logger:     cfg.Logger,
			Metrics:    cfg.Metrics,
		}),
	}, nil
}

// Change изменяет поле черновика
func (f *Form) Change(field Field, value string) {
	f.ctrl.Change(field, value)
}

// Blur валидирует поле при потере фокуса
func (f *Form) Blur(field Field, value string) {
	f.ctrl.Blur(field, value)
}

// Submit валидирует и отправляет клиента
func (f *Form) Submit(ctx context.Context) form.Outcome {
	return f.ctrl.Submit(ctx)
}

// Dispose отключает форму
func (f *Form) Dispose() {
	f.ctrl.Dispose()
}

// Draft текущий черновик
func (f *Form) Draft() Draft {
	return f.ctrl.Draft()
}

// State состояние отправки
func (f *Form) State() form.State {
	return f.ctrl.State()
}

// Errors ошибки валидации по полям
func (f *Form) Errors() validation.Errors[Field] {
	return f.ctrl.Errors()
}

// HasError признак ошибки поля
func (f *Form) HasError(field Field) bool {
	return f.ctrl.HasError(field)
}

// Error сообщение об ошибке поля
func (f *Form) Error(field Field) string {
	return f.ctrl.Error(field)
}

// Failed признак общей ошибки сохранения
func (f *Form) Failed() bool {
	return f.ctrl.Failed()
}
