package appointmentform

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/form"
	"github.com/m04kA/SMC-SalonBooking/internal/slotgrid"
	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

// FormName имя формы в логах и метриках
const FormName = "appointment"

// Сообщения валидации
const (
	MsgServiceRequired  = "Salon service is required"
	MsgStartsAtRequired = "Please choose a time slot"
)

// DefaultValidators правила валидации формы записи
func DefaultValidators() validation.Validators[Field] {
	return validation.Validators[Field]{
		FieldService:  validation.Required(MsgServiceRequired),
		FieldStartsAt: validation.Required(MsgStartsAtRequired),
	}
}

// Config параметры формы записи
// Нулевые значения заменяются значениями по умолчанию:
//   - SelectableServices, SelectableStylists, ServiceStylists - справочники салона из domain
//   - OpensAt/ClosesAt - 9..19 (если оба равны нулю)
//   - Validators - DefaultValidators()
//
// Today и Submitter обязательны
type Config struct {
	SelectableServices []string
	SelectableStylists []string
	ServiceStylists    domain.ServiceCatalog
	OpensAt            int
	ClosesAt           int

	// Today опорная дата: первый столбец сетки и часовой пояс слотов
	Today              time.Time
	AvailableTimeSlots []domain.OpenSlot
	// Original начальные значения полей
	Original domain.Appointment

	Validators validation.Validators[Field]
	Submitter  Submitter
	OnSave     func(domain.Appointment)
	Logger     form.Logger
	Metrics    form.Metrics
}

// Form форма записи на услугу
type Form struct {
	services []string
	stylists []string
	catalog  domain.ServiceCatalog
	grid     slotgrid.Grid
	slots    []domain.OpenSlot

	ctrl *form.Controller[Field, Draft, domain.Appointment]
}

// New создает форму записи
func New(cfg Config) (*Form, error) {
	if cfg.Today.IsZero() {
		return nil, ErrTodayRequired
	}
	if cfg.Submitter == nil {
		return nil, ErrSubmitterRequired
	}

	if cfg.SelectableServices == nil {
		cfg.SelectableServices = domain.DefaultServices()
	}
	if cfg.SelectableStylists == nil {
		cfg.SelectableStylists = domain.DefaultStylists()
	}
	if cfg.ServiceStylists == nil {
		cfg.ServiceStylists = domain.DefaultServiceCatalog()
	}
	if cfg.OpensAt == 0 && cfg.ClosesAt == 0 {
		cfg.OpensAt = domain.DefaultSalonOpensAt
		cfg.ClosesAt = domain.DefaultSalonClosesAt
	}
	if cfg.Validators == nil {
		cfg.Validators = DefaultValidators()
	}

	grid, err := slotgrid.Build(cfg.Today, cfg.OpensAt, cfg.ClosesAt)
	if err != nil {
		return nil, fmt.Errorf("appointment form: %w", err)
	}

	submitter := cfg.Submitter
	submit := func(ctx context.Context, d Draft) (domain.Appointment, error) {
		a := d.Appointment()
		return a, submitter.CreateAppointment(ctx, a)
	}

	f := &Form{
		services: cfg.SelectableServices,
		stylists: cfg.SelectableStylists,
		catalog:  cfg.ServiceStylists,
		grid:     grid,
		slots:    cfg.AvailableTimeSlots,
	}
	f.ctrl = form.New(form.Config[Field, Draft, domain.Appointment]{
		Name:       FormName,
		Draft:      NewDraft(cfg.Original, cfg.Today.Location()),
		Validators: cfg.Validators,
		Submit:     submit,
		OnSave:     cfg.OnSave,
		Logger:     cfg.Logger,
		Metrics:    cfg.Metrics,
	})
	return f, nil
}

// SelectableServices список услуг для выбора
func (f *Form) SelectableServices() []string {
	return f.services
}

// SelectableStylists мастера, выполняющие выбранную услугу (все, если услуга не выбрана)
// Ранее выбранный мастер остается в черновике, даже если его нет в списке
func (f *Form) SelectableStylists() []string {
	return availability.ProvidersForService(f.ctrl.Draft().Service, f.catalog, f.stylists)
}

// SlotCell ячейка таблицы слотов
type SlotCell struct {
	StartsAt time.Time
	Bookable bool
	Checked  bool
}

// SlotTable таблица слотов на неделю: строки - время суток, столбцы - даты
type SlotTable struct {
	Times []time.Time
	Dates []time.Time
	Cells [][]SlotCell
}

// TimeSlots строит таблицу слотов с учетом выбранного мастера
func (f *Form) TimeSlots() SlotTable {
	draft := f.ctrl.Draft()
	bookable := availability.BookableCells(f.grid, availability.FilterByProvider(f.slots, draft.Stylist))

	rows := f.grid.Rows()
	cells := make([][]SlotCell, len(rows))
	for r, row := range rows {
		cells[r] = make([]SlotCell, len(row))
		for c, cell := range row {
			startsAt := cell.StartsAt()
			cells[r][c] = SlotCell{
				StartsAt: startsAt,
				Bookable: bookable[r][c],
				Checked:  draft.StartsAt.Equal(startsAt),
			}
		}
	}

	return SlotTable{
		Times: f.grid.Times,
		Dates: f.grid.Dates,
		Cells: cells,
	}
}

// SelectSlot выбирает слот. Слот должен быть свободен для текущего мастера
func (f *Form) SelectSlot(startsAt time.Time) error {
	slots := availability.FilterByProvider(f.slots, f.ctrl.Draft().Stylist)
	for _, slot := range slots {
		if slot.StartsAt.Equal(startsAt) && f.onGrid(startsAt) {
			f.ctrl.Change(FieldStartsAt, formatMillis(startsAt))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSlotUnavailable, startsAt.Format(time.RFC3339))
}

func (f *Form) onGrid(startsAt time.Time) bool {
	for _, row := range f.grid.Rows() {
		for _, cell := range row {
			if cell.StartsAt().Equal(startsAt) {
				return true
			}
		}
	}
	return false
}

// Change изменяет поле черновика
func (f *Form) Change(field Field, value string) {
	f.ctrl.Change(field, value)
}

// Blur валидирует поле при потере фокуса
func (f *Form) Blur(field Field, value string) {
	f.ctrl.Blur(field, value)
}

// Submit валидирует и отправляет запись
func (f *Form) Submit(ctx context.Context) form.Outcome {
	return f.ctrl.Submit(ctx)
}

// Dispose отключает форму; ответ на запрос в полете будет отброшен
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

// Error сообщение об ошибке поля
func (f *Form) Error(field Field) string {
	return f.ctrl.Error(field)
}

// Failed признак общей ошибки сохранения
func (f *Form) Failed() bool {
	return f.ctrl.Failed()
}
