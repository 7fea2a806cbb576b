package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

func at(day, hour int) time.Time {
	return time.Date(2019, time.June, day, hour, 0, 0, 0, time.UTC)
}

func TestAppointmentRepository_CreateRejectsDoubleBooking(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.Appointment{Service: "Cut", Stylist: "Jo", StartsAt: at(1, 9)}))
	require.NoError(t, repo.Create(ctx, domain.Appointment{Service: "Cut", Stylist: "Sam", StartsAt: at(1, 9)}))

	err := repo.Create(ctx, domain.Appointment{Service: "Blow-dry", Stylist: "Jo", StartsAt: at(1, 9)})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestAppointmentRepository_ConcurrentCreateBooksOnce(t *testing.T) {
	repo := NewAppointmentRepository()
	var ok int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if repo.Create(context.Background(), domain.Appointment{Stylist: "Pat", StartsAt: at(2, 10)}) == nil {
				atomic.AddInt32(&ok, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), ok)
}

func TestAppointmentRepository_ListBetween(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, domain.Appointment{Stylist: "Jo", StartsAt: at(2, 12)}))
	require.NoError(t, repo.Create(ctx, domain.Appointment{Stylist: "Jo", StartsAt: at(2, 9)}))
	require.NoError(t, repo.Create(ctx, domain.Appointment{Stylist: "Jo", StartsAt: at(3, 9)}))

	items, err := repo.ListBetween(ctx, at(2, 0), at(2, 23))
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, at(2, 9).Equal(items[0].StartsAt))
	assert.True(t, at(2, 12).Equal(items[1].StartsAt))

	items, err = repo.ListBetween(ctx, at(5, 0), at(5, 23))
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = repo.ListBetween(ctx, at(3, 0), at(2, 0))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCustomerRepository(t *testing.T) {
	repo := NewCustomerRepository()
	ctx := context.Background()
	c := domain.Customer{ID: "c-1", FirstName: "Ashley", LastName: "Jones", PhoneNumber: "123"}

	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, "c-1")
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	err = repo.Create(ctx, domain.Customer{ID: "c-2", PhoneNumber: "123"})
	assert.ErrorIs(t, err, ErrPhoneNumberTaken)
}

func TestRepositories_HonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, NewAppointmentRepository().Create(ctx, domain.Appointment{}), context.Canceled)
	_, err := NewCustomerRepository().GetByID(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
