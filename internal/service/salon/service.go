package salon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonBooking/internal/appointmentform"
	"github.com/m04kA/SMC-SalonBooking/internal/customerform"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonBooking/internal/slotgrid"
	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

// Settings справочные данные салона
type Settings struct {
	OpensAt  int
	ClosesAt int
	Services []string
	Stylists []string
	Catalog  domain.ServiceCatalog
	Location *time.Location
}

// Service сервис салона: свободные слоты, записи и клиенты
type Service struct {
	appointments AppointmentRepository
	customers    CustomerRepository
	settings     Settings
	clock        TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса салона
func NewService(
	appointments AppointmentRepository,
	customers CustomerRepository,
	settings Settings,
	clock TimeProvider,
	logger Logger,
) *Service {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &Service{
		appointments: appointments,
		customers:    customers,
		settings:     settings,
		clock:        clock,
		logger:       logger,
	}
}

// AvailableTimeSlots возвращает свободные слоты на неделю, начиная с сегодняшнего дня
// Слоты в прошлом и слоты без свободных мастеров не возвращаются
func (s *Service) AvailableTimeSlots(ctx context.Context) ([]domain.OpenSlot, error) {
	now := s.clock.Now().In(s.settings.Location)

	grid, err := slotgrid.Build(now, s.settings.OpensAt, s.settings.ClosesAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AvailableTimeSlots - build grid: %v", ErrInternal, err)
	}

	from := grid.Dates[0]
	last := grid.Dates[len(grid.Dates)-1]
	to := time.Date(last.Year(), last.Month(), last.Day()+1, 0, 0, 0, 0, last.Location()).Add(-time.Nanosecond)

	booked, err := s.appointments.ListBetween(ctx, from, to)
	if err != nil {
		s.logger.Error("AvailableTimeSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: AvailableTimeSlots - repository error: %v", ErrInternal, err)
	}

	busy := make(map[int64]map[string]struct{}, len(booked))
	for _, a := range booked {
		key := a.StartsAt.UnixNano()
		if busy[key] == nil {
			busy[key] = make(map[string]struct{})
		}
		busy[key][a.Stylist] = struct{}{}
	}

	slots := make([]domain.OpenSlot, 0)
	for col := range grid.Dates {
		for row := range grid.Times {
			startsAt := grid.Cell(row, col).StartsAt()
			if !startsAt.After(now) {
				continue
			}

			free := make([]string, 0, len(s.settings.Stylists))
			for _, stylist := range s.settings.Stylists {
				if _, taken := busy[startsAt.UnixNano()][stylist]; !taken {
					free = append(free, stylist)
				}
			}
			if len(free) == 0 {
				continue
			}

			slots = append(slots, domain.OpenSlot{StartsAt: startsAt, Stylists: free})
		}
	}

	s.logger.Info("AvailableTimeSlots: %d open slots from %s", len(slots), from.Format(domain.DateFormat))
	return slots, nil
}

// CreateAppointment проверяет и сохраняет запись
// Если мастер не указан, назначается первый свободный мастер, выполняющий услугу
func (s *Service) CreateAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	draft := appointmentform.NewDraft(a, s.settings.Location)
	if errs := failedFields(appointmentform.DefaultValidators(), draft.Values()); len(errs) > 0 {
		s.logger.Warn("CreateAppointment: invalid fields %v", errs)
		return domain.Appointment{}, &ValidationError{Fields: errs}
	}

	if !contains(s.settings.Services, a.Service) {
		return domain.Appointment{}, fieldError(string(appointmentform.FieldService), MsgUnknownService)
	}
	if a.Stylist != "" && !s.settings.Catalog.CanPerform(a.Service, a.Stylist) {
		return domain.Appointment{}, fieldError(string(appointmentform.FieldStylist), MsgStylistCannotServe)
	}

	if a.Customer != "" {
		if _, err := s.customers.GetByID(ctx, a.Customer); err != nil {
			if errors.Is(err, memory.ErrCustomerNotFound) {
				return domain.Appointment{}, fieldError(string(appointmentform.FieldCustomer), MsgUnknownCustomer)
			}
			s.logger.Error("CreateAppointment: customer lookup failed: %v", err)
			return domain.Appointment{}, fmt.Errorf("%w: CreateAppointment - customer lookup: %v", ErrInternal, err)
		}
	}

	slots, err := s.AvailableTimeSlots(ctx)
	if err != nil {
		return domain.Appointment{}, err
	}

	stylist, ok := s.pickStylist(slots, a)
	if !ok {
		msg := MsgSlotUnavailable
		if a.Stylist == "" && slotExists(slots, a.StartsAt) {
			msg = MsgNoStylistAvailable
		}
		s.logger.Warn("CreateAppointment: slot %s unavailable for service=%s stylist=%s",
			a.StartsAt.Format(time.RFC3339), a.Service, a.Stylist)
		return domain.Appointment{}, fieldError(string(appointmentform.FieldStartsAt), msg)
	}
	a.Stylist = stylist
	a.StartsAt = a.StartsAt.In(s.settings.Location)

	if err := s.appointments.Create(ctx, a); err != nil {
		if errors.Is(err, memory.ErrSlotTaken) {
			s.logger.Warn("CreateAppointment: lost race for %s: %v", a.StartsAt.Format(time.RFC3339), err)
			return domain.Appointment{}, fieldError(string(appointmentform.FieldStartsAt), MsgSlotUnavailable)
		}
		s.logger.Error("CreateAppointment: repository error: %v", err)
		return domain.Appointment{}, fmt.Errorf("%w: CreateAppointment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAppointment: booked service=%s stylist=%s at %s", a.Service, a.Stylist, a.StartsAt.Format(time.RFC3339))
	return a, nil
}

func (s *Service) pickStylist(slots []domain.OpenSlot, a domain.Appointment) (string, bool) {
	for _, slot := range slots {
		if !slot.StartsAt.Equal(a.StartsAt) {
			continue
		}
		if a.Stylist != "" {
			return a.Stylist, slot.HasStylist(a.Stylist)
		}
		for _, candidate := range s.settings.Catalog.Stylists(a.Service) {
			if slot.HasStylist(candidate) {
				return candidate, true
			}
		}
		return "", false
	}
	return "", false
}

// CreateCustomer проверяет и сохраняет клиента, присваивая ему ID
func (s *Service) CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if errs := failedFields(customerform.Validators(), customerform.NewDraft(c).Values()); len(errs) > 0 {
		s.logger.Warn("CreateCustomer: invalid fields %v", errs)
		return domain.Customer{}, &ValidationError{Fields: errs}
	}

	c.ID = uuid.NewString()
	if err := s.customers.Create(ctx, c); err != nil {
		if errors.Is(err, memory.ErrPhoneNumberTaken) {
			s.logger.Warn("CreateCustomer: %v", err)
			return domain.Customer{}, fieldError(string(customerform.FieldPhoneNumber), MsgPhoneNumberConflict)
		}
		s.logger.Error("CreateCustomer: repository error: %v", err)
		return domain.Customer{}, fmt.Errorf("%w: CreateCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateCustomer: created id=%s", c.ID)
	return c, nil
}

// AppointmentsBetween возвращает записи с началом в [from, to]
func (s *Service) AppointmentsBetween(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	items, err := s.appointments.ListBetween(ctx, from.In(s.settings.Location), to.In(s.settings.Location))
	if err != nil {
		if errors.Is(err, memory.ErrInvalidRange) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
		}
		s.logger.Error("AppointmentsBetween: repository error: %v", err)
		return nil, fmt.Errorf("%w: AppointmentsBetween - repository error: %v", ErrInternal, err)
	}
	return items, nil
}

func failedFields[F ~string](validators validation.Validators[F], values map[F]string) map[string]string {
	failed := validation.ValidateMany(validators, values).Failed()
	if len(failed) == 0 {
		return nil
	}
	out := make(map[string]string, len(failed))
	for field, msg := range failed {
		out[string(field)] = msg
	}
	return out
}

func slotExists(slots []domain.OpenSlot, startsAt time.Time) bool {
	for _, slot := range slots {
		if slot.StartsAt.Equal(startsAt) {
			return true
		}
	}
	return false
}

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}
