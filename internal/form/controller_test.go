package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

type field string

const (
	fieldName  field = "name"
	fieldPhone field = "phone"
)

type record struct {
	Name  string
	Phone string
}

func (r record) With(f field, v string) record {
	switch f {
	case fieldName:
		r.Name = v
	case fieldPhone:
		r.Phone = v
	}
	return r
}

func (r record) Values() map[field]string {
	return map[field]string{fieldName: r.Name, fieldPhone: r.Phone}
}

type rejection map[string]string

func (r rejection) Error() string                   { return "rejected" }
func (r rejection) FieldErrors() map[string]string { return r }

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) ObserveSubmission(_ string, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

var testValidators = validation.Validators[field]{
	fieldName:  validation.Required("Name is required"),
	fieldPhone: validation.Required("Phone is required"),
}

type harness struct {
	ctrl    *Controller[field, record, record]
	calls   []record
	saved   []record
	metrics *recordingMetrics
}

func newHarness(t *testing.T, initial record, submit SubmitFunc[record, record]) *harness {
	t.Helper()
	h := &harness{metrics: &recordingMetrics{}}
	h.ctrl = New(Config[field, record, record]{
		Name:       "test",
		Draft:      initial,
		Validators: testValidators,
		Submit: func(ctx context.Context, r record) (record, error) {
			h.calls = append(h.calls, r)
			return submit(ctx, r)
		},
		OnSave:  func(r record) { h.saved = append(h.saved, r) },
		Metrics: h.metrics,
	})
	return h
}

func echo(_ context.Context, r record) (record, error) { return r, nil }

var valid = record{Name: "Ashley", Phone: "12345"}

func TestController_InitialState(t *testing.T) {
	h := newHarness(t, record{}, echo)

	assert.Equal(t, StateIdle, h.ctrl.State())
	assert.Empty(t, h.ctrl.Errors())
	assert.False(t, h.ctrl.HasError(fieldName))
	assert.False(t, h.ctrl.Failed())
}

func TestController_ChangeDoesNotValidateFreshField(t *testing.T) {
	h := newHarness(t, record{}, echo)

	h.ctrl.Change(fieldName, "")

	assert.Equal(t, "", h.ctrl.Draft().Name)
	assert.Empty(t, h.ctrl.Errors())
}

func TestController_BlurValidates(t *testing.T) {
	h := newHarness(t, record{}, echo)

	h.ctrl.Blur(fieldName, " ")
	assert.Equal(t, "Name is required", h.ctrl.Error(fieldName))

	h.ctrl.Blur(fieldName, "Ashley")
	assert.False(t, h.ctrl.HasError(fieldName))
	_, validated := h.ctrl.Errors()[fieldName]
	assert.True(t, validated)
}

func TestController_ChangeRevalidatesFieldInError(t *testing.T) {
	h := newHarness(t, record{}, echo)
	h.ctrl.Blur(fieldName, "")
	require.True(t, h.ctrl.HasError(fieldName))

	h.ctrl.Change(fieldName, "A")

	assert.False(t, h.ctrl.HasError(fieldName))
	assert.Equal(t, "A", h.ctrl.Draft().Name)
}

func TestController_SubmitInvalidDoesNotSend(t *testing.T) {
	h := newHarness(t, record{Name: "Ashley"}, echo)

	outcome := h.ctrl.Submit(context.Background())

	assert.Equal(t, OutcomeInvalid, outcome)
	assert.Empty(t, h.calls)
	assert.Equal(t, validation.Errors[field]{fieldName: "", fieldPhone: "Phone is required"}, h.ctrl.Errors())
	assert.Equal(t, StateIdle, h.ctrl.State())
	assert.Equal(t, []string{"invalid"}, h.metrics.outcomes)
}

func TestController_SubmitSuccess(t *testing.T) {
	h := newHarness(t, valid, func(_ context.Context, r record) (record, error) {
		r.Name += " (saved)"
		return r, nil
	})

	outcome := h.ctrl.Submit(context.Background())

	assert.Equal(t, OutcomeSaved, outcome)
	require.Len(t, h.calls, 1)
	assert.Equal(t, valid, h.calls[0])
	require.Len(t, h.saved, 1)
	assert.Equal(t, "Ashley (saved)", h.saved[0].Name)
	assert.Equal(t, StateIdle, h.ctrl.State())
	assert.False(t, h.ctrl.Failed())
}

func TestController_SubmitSendsChangedValues(t *testing.T) {
	h := newHarness(t, valid, echo)

	h.ctrl.Change(fieldPhone, "999")
	h.ctrl.Submit(context.Background())

	require.Len(t, h.calls, 1)
	assert.Equal(t, "999", h.calls[0].Phone)
}

func TestController_SubmitFieldRejection(t *testing.T) {
	h := newHarness(t, valid, func(context.Context, record) (record, error) {
		return record{}, rejection{"phone": "Phone number already exists in the system"}
	})
	h.ctrl.Blur(fieldName, "Ashley")

	outcome := h.ctrl.Submit(context.Background())

	assert.Equal(t, OutcomeRejected, outcome)
	assert.Equal(t, "Phone number already exists in the system", h.ctrl.Error(fieldPhone))
	assert.False(t, h.ctrl.HasError(fieldName))
	assert.False(t, h.ctrl.Failed(), "field rejection never sets the generic flag")
	assert.Empty(t, h.saved)
	assert.Equal(t, StateIdle, h.ctrl.State())
	assert.Equal(t, valid, h.ctrl.Draft())
}

func TestController_WrappedRejectionIsRecognised(t *testing.T) {
	h := newHarness(t, valid, func(context.Context, record) (record, error) {
		return record{}, errors.Join(errors.New("422"), rejection{"name": "taken"})
	})

	assert.Equal(t, OutcomeRejected, h.ctrl.Submit(context.Background()))
	assert.Equal(t, "taken", h.ctrl.Error(fieldName))
}

func TestController_EmptyRejectionIsGenericFailure(t *testing.T) {
	h := newHarness(t, valid, func(context.Context, record) (record, error) {
		return record{}, rejection{}
	})

	assert.Equal(t, OutcomeFailed, h.ctrl.Submit(context.Background()))
	assert.True(t, h.ctrl.Failed())
	assert.Empty(t, h.ctrl.Errors())
}

func TestController_SubmitGenericFailure(t *testing.T) {
	h := newHarness(t, valid, func(context.Context, record) (record, error) {
		return record{}, errors.New("connection refused")
	})

	outcome := h.ctrl.Submit(context.Background())

	assert.Equal(t, OutcomeFailed, outcome)
	assert.True(t, h.ctrl.Failed())
	assert.Empty(t, h.ctrl.Errors(), "generic failure never populates field errors")
	assert.Empty(t, h.saved)
	assert.Equal(t, StateIdle, h.ctrl.State())
}

func TestController_SuccessClearsGenericFlag(t *testing.T) {
	fail := true
	h := newHarness(t, valid, func(_ context.Context, r record) (record, error) {
		if fail {
			return record{}, errors.New("boom")
		}
		return r, nil
	})

	h.ctrl.Submit(context.Background())
	require.True(t, h.ctrl.Failed())

	fail = false
	assert.Equal(t, OutcomeSaved, h.ctrl.Submit(context.Background()))
	assert.False(t, h.ctrl.Failed())
}

func TestController_IgnoresSubmitWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var sent int
	ctrl := New(Config[field, record, record]{
		Draft:      valid,
		Validators: testValidators,
		Submit: func(_ context.Context, r record) (record, error) {
			sent++
			close(started)
			<-release
			return r, nil
		},
	})

	done := make(chan Outcome)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-started

	assert.Equal(t, StateSubmitting, ctrl.State())
	assert.Equal(t, OutcomeIgnored, ctrl.Submit(context.Background()))

	close(release)
	assert.Equal(t, OutcomeSaved, <-done)
	assert.Equal(t, 1, sent)
	assert.Equal(t, StateIdle, ctrl.State())
}

func TestController_DisposeDropsLateResponse(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	saved := 0
	ctrl := New(Config[field, record, record]{
		Draft:      valid,
		Validators: testValidators,
		Submit: func(context.Context, record) (record, error) {
			close(started)
			<-release
			return record{}, errors.New("late failure")
		},
		OnSave: func(record) { saved++ },
	})

	done := make(chan Outcome)
	go func() { done <- ctrl.Submit(context.Background()) }()
	<-started

	ctrl.Dispose()
	close(release)

	assert.Equal(t, OutcomeDropped, <-done)
	assert.False(t, ctrl.Failed(), "state is not touched after dispose")
	assert.Zero(t, saved)
	assert.Equal(t, OutcomeIgnored, ctrl.Submit(context.Background()))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "saved", OutcomeSaved.String())
	assert.Equal(t, "dropped", OutcomeDropped.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
}
