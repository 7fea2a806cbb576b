package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/appointmentform"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/customerform"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/form"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

const slotLayout = domain.DateFormat + " " + domain.TimeFormat

type options struct {
	configPath string
	today      string
	service    string
	stylist    string
	slot       string
	customer   string
	firstName  string
	lastName   string
	phone      string
	day        string
	metrics    bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "config.toml", "path to TOML config")
	flag.StringVar(&o.today, "today", "", "first day of the grid, YYYY-MM-DD (default: today)")
	flag.StringVar(&o.service, "service", "", "salon service")
	flag.StringVar(&o.stylist, "stylist", "", "stylist")
	flag.StringVar(&o.slot, "slot", "", `slot to book, "YYYY-MM-DD HH:MM"; only the grid is printed when empty`)
	flag.StringVar(&o.customer, "customer", "", "existing customer id")
	flag.StringVar(&o.firstName, "first-name", "", "create a customer first: first name")
	flag.StringVar(&o.lastName, "last-name", "", "create a customer first: last name")
	flag.StringVar(&o.phone, "phone", "", "create a customer first: phone number")
	flag.StringVar(&o.day, "day", "", "list appointments of a day, YYYY-MM-DD, and exit")
	flag.BoolVar(&o.metrics, "metrics", false, "print client metrics to stderr on exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	// Загружаем конфигурацию
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	m := metrics.New(cfg.Metrics.ServiceName)
	runErr := run(context.Background(), cfg, log, m, opts, os.Stdout)

	if opts.metrics {
		if err := m.WriteText(os.Stderr); err != nil {
			log.Warn("%v", err)
		}
	}
	if runErr != nil {
		log.Error("%v", runErr)
		log.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics, opts options, out io.Writer) error {
	location, err := cfg.Salon.Location()
	if err != nil {
		return err
	}

	client := salonapi.NewClient(
		cfg.Client.BaseURL,
		time.Duration(cfg.Client.Timeout)*time.Second,
		log,
		salonapi.WithLocation(location),
		salonapi.WithRateLimit(cfg.Client.RequestsPerSecond, cfg.Client.Burst),
		salonapi.WithMetrics(m),
	)

	today := time.Now().In(location)
	if opts.today != "" {
		if today, err = time.ParseInLocation(domain.DateFormat, opts.today, location); err != nil {
			return fmt.Errorf("invalid -today: %w", err)
		}
	}

	if opts.day != "" {
		day, err := time.ParseInLocation(domain.DateFormat, opts.day, location)
		if err != nil {
			return fmt.Errorf("invalid -day: %w", err)
		}
		items, err := client.GetAppointments(ctx, day)
		if err != nil {
			return fmt.Errorf("failed to load appointments: %w", err)
		}
		printAppointments(out, items)
		return nil
	}

	customerID := opts.customer
	if opts.firstName != "" || opts.lastName != "" || opts.phone != "" {
		customer, err := createCustomer(ctx, client, log, m, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Customer saved: %s (id=%s)\n", customer.FullName(), customer.ID)
		customerID = customer.ID
	}

	slots, err := client.GetAvailableTimeSlots(ctx)
	if err != nil {
		return fmt.Errorf("failed to load available time slots: %w", err)
	}

	af, err := appointmentform.New(appointmentform.Config{
		SelectableServices: cfg.Salon.Services,
		SelectableStylists: cfg.Salon.Stylists,
		ServiceStylists:    cfg.Salon.Catalog(),
		OpensAt:            cfg.Salon.OpensAt,
		ClosesAt:           cfg.Salon.ClosesAt,
		Today:              today,
		AvailableTimeSlots: slots,
		Original:           domain.Appointment{Customer: customerID},
		Submitter:          client,
		Logger:             log,
		Metrics:            m,
		OnSave: func(a domain.Appointment) {
			fmt.Fprintf(out, "Appointment saved: %s with %s at %s\n",
				a.Service, stylistOrAny(a.Stylist), a.StartsAt.Format(slotLayout))
		},
	})
	if err != nil {
		return err
	}
	defer af.Dispose()

	af.Change(appointmentform.FieldService, opts.service)
	af.Change(appointmentform.FieldStylist, opts.stylist)

	if opts.slot != "" {
		startsAt, err := time.ParseInLocation(slotLayout, opts.slot, location)
		if err != nil {
			return fmt.Errorf("invalid -slot: %w", err)
		}
		if err := af.SelectSlot(startsAt); err != nil {
			return err
		}
	}

	printGrid(out, af)

	if opts.slot == "" {
		return nil
	}

	switch outcome := af.Submit(ctx); outcome {
	case form.OutcomeSaved:
		return nil
	case form.OutcomeFailed:
		return errors.New(form.FailedMessage)
	default:
		printErrors(out, af.Errors().Failed())
		return fmt.Errorf("appointment not saved: %s", outcome)
	}
}

func createCustomer(ctx context.Context, client *salonapi.Client, log *logger.Logger, m *metrics.Metrics, opts options) (domain.Customer, error) {
	var saved domain.Customer
	cf, err := customerform.New(customerform.Config{
		Original: domain.Customer{
			FirstName:   opts.firstName,
			LastName:    opts.lastName,
			PhoneNumber: opts.phone,
		},
		Submitter: client,
		OnSave:    func(c domain.Customer) { saved = c },
		Logger:    log,
		Metrics:   m,
	})
	if err != nil {
		return domain.Customer{}, err
	}
	defer cf.Dispose()

	switch outcome := cf.Submit(ctx); outcome {
	case form.OutcomeSaved:
		return saved, nil
	case form.OutcomeFailed:
		return domain.Customer{}, errors.New(form.FailedMessage)
	default:
		printErrors(os.Stderr, cf.Errors().Failed())
		return domain.Customer{}, fmt.Errorf("customer not saved: %s", outcome)
	}
}

func stylistOrAny(stylist string) string {
	if stylist == "" {
		return "any stylist"
	}
	return stylist
}
