package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/appointmentform"
	"github.com/m04kA/SMC-SalonBooking/internal/customerform"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/form"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonapi"
	"github.com/m04kA/SMC-SalonBooking/internal/service/salon"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var now = time.Date(2019, time.June, 1, 8, 0, 0, 0, time.UTC)

func newStub(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()
	log := logger.NewNop()
	m := metrics.New("salon-test")

	svc := salon.NewService(
		memory.NewAppointmentRepository(),
		memory.NewCustomerRepository(),
		salon.Settings{
			OpensAt:  domain.DefaultSalonOpensAt,
			ClosesAt: domain.DefaultSalonClosesAt,
			Services: domain.DefaultServices(),
			Stylists: domain.DefaultStylists(),
			Catalog:  domain.DefaultServiceCatalog(),
			Location: time.UTC,
		},
		fixedClock{now: now},
		log,
	)

	srv := httptest.NewServer(NewRouter(RouterConfig{
		Service:        svc,
		Logger:         log,
		Metrics:        m,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"http://localhost:3000"},
	}))
	t.Cleanup(srv.Close)
	return srv, m
}

func TestRouter_CustomerThenAppointmentThroughForms(t *testing.T) {
	srv, _ := newStub(t)
	client := salonapi.NewClient(srv.URL, time.Second, logger.NewNop(), salonapi.WithLocation(time.UTC))
	ctx := context.Background()

	var customer domain.Customer
	cf, err := customerform.New(customerform.Config{
		Submitter: client,
		OnSave:    func(c domain.Customer) { customer = c },
	})
	require.NoError(t, err)

	cf.Change(customerform.FieldFirstName, "Ashley")
	cf.Change(customerform.FieldLastName, "Jones")
	cf.Change(customerform.FieldPhoneNumber, "(01) 234 567")
	require.Equal(t, form.OutcomeSaved, cf.Submit(ctx))
	require.NotEmpty(t, customer.ID)

	slots, err := client.GetAvailableTimeSlots(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	var booked []domain.Appointment
	af, err := appointmentform.New(appointmentform.Config{
		Today:              now,
		AvailableTimeSlots: slots,
		Original:           domain.Appointment{Customer: customer.ID},
		Submitter:          client,
		OnSave:             func(a domain.Appointment) { booked = append(booked, a) },
	})
	require.NoError(t, err)

	af.Change(appointmentform.FieldService, "Cut & color")
	af.Change(appointmentform.FieldStylist, "Jo")
	slot := time.Date(2019, time.June, 2, 11, 0, 0, 0, time.UTC)
	require.NoError(t, af.SelectSlot(slot))
	require.Equal(t, form.OutcomeSaved, af.Submit(ctx))
	require.Len(t, booked, 1)

	// Повторная отправка того же слота отклоняется сервером по полю
	assert.Equal(t, form.OutcomeRejected, af.Submit(ctx))
	assert.Equal(t, salon.MsgSlotUnavailable, af.Error(appointmentform.FieldStartsAt))
	assert.False(t, af.Failed())

	items, err := client.GetAppointments(ctx, slot)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Jo", items[0].Stylist)
	assert.Equal(t, customer.ID, items[0].Customer)
	assert.True(t, slot.Equal(items[0].StartsAt))
}

func TestRouter_CustomerValidationIs422(t *testing.T) {
	srv, _ := newStub(t)
	client := salonapi.NewClient(srv.URL, time.Second, logger.NewNop())

	_, err := client.CreateCustomer(context.Background(), domain.Customer{FirstName: "Ashley", LastName: "Jones", PhoneNumber: "abc"})

	var vErr *salonapi.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, map[string]string{"phoneNumber": customerform.MsgPhoneNumberFormat}, vErr.FieldErrors())
}

func TestRouter_BadRequests(t *testing.T) {
	srv, _ := newStub(t)

	resp, err := http.Post(srv.URL+"/customers", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/appointments/200-100")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/appointments/abc")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CORSAndMetrics(t *testing.T) {
	srv, m := newStub(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/availableTimeSlots", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/availableTimeSlots",service="salon-test",status="200"} 1`)
}
