// Package form implements the submission state machine shared by the salon forms.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/SMC-SalonBooking/internal/validation"
)

// Config wires a Controller. Name, Logger, Metrics and OnSave are optional.
type Config[F ~string, D Draft[F, D], R any] struct {
	Name       string
	Draft      D
	Validators validation.Validators[F]
	Submit     SubmitFunc[D, R]
	OnSave     func(R)
	Logger     Logger
	Metrics    Metrics
}

// Controller owns one form's draft, validation errors and submission state.
// At most one submission is in flight at a time.
type Controller[F ~string, D Draft[F, D], R any] struct {
	mu sync.Mutex

	name       string
	validators validation.Validators[F]
	submit     SubmitFunc[D, R]
	onSave     func(R)
	logger     Logger
	metrics    Metrics

	draft    D
	errs     validation.Errors[F]
	state    State
	failed   bool
	disposed bool
	// token identifies the in-flight submission; Dispose advances it
	token uint64
}

// New creates a controller in the Idle state with no field validated yet.
func New[F ~string, D Draft[F, D], R any](cfg Config[F, D, R]) *Controller[F, D, R] {
	c := &Controller[F, D, R]{
		name:       cfg.Name,
		validators: cfg.Validators,
		submit:     cfg.Submit,
		onSave:     cfg.OnSave,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		draft:      cfg.Draft,
		errs:       validation.Errors[F]{},
		state:      StateIdle,
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	if c.metrics == nil {
		c.metrics = nopMetrics{}
	}
	if c.name == "" {
		c.name = "form"
	}
	return c
}

// Change stores value in the draft. A field that currently shows an error is
// revalidated straight away; other fields wait for Blur or Submit.
func (c *Controller[F, D, R]) Change(field F, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = c.draft.With(field, value)
	if validation.HasError(c.errs, field) {
		c.errs = validation.Merge(c.errs, validation.ValidateMany(c.validators, map[F]string{field: value}))
	}
}

// Blur validates value for field and records the result.
func (c *Controller[F, D, R]) Blur(field F, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errs = validation.Merge(c.errs, validation.ValidateMany(c.validators, map[F]string{field: value}))
}

// Submit validates the whole draft and, if it passes, sends it. It blocks until the
// submitter returns. The draft is left intact whatever the outcome.
func (c *Controller[F, D, R]) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.disposed || c.state == StateSubmitting {
		state, disposed := c.state, c.disposed
		c.mu.Unlock()
		c.logger.Warn("%s: submit ignored, state=%s disposed=%t", c.name, state, disposed)
		return c.observe(OutcomeIgnored)
	}

	errs := validation.ValidateMany(c.validators, c.draft.Values())
	if validation.AnyErrors(errs) {
		c.errs = errs
		c.mu.Unlock()
		c.logger.Info("%s: submit blocked by %d invalid field(s)", c.name, len(errs.Failed()))
		return c.observe(OutcomeInvalid)
	}

	c.state = StateSubmitting
	c.token++
	token := c.token
	draft := c.draft
	c.mu.Unlock()

	result, err := c.submit(ctx, draft)

	c.mu.Lock()
	if c.disposed || token != c.token {
		c.mu.Unlock()
		c.logger.Info("%s: response dropped after dispose", c.name)
		return c.observe(OutcomeDropped)
	}

	c.state = StateIdle
	outcome := c.apply(err)
	onSave := c.onSave
	c.mu.Unlock()

	if outcome == OutcomeSaved && onSave != nil {
		onSave(result)
	}
	return c.observe(outcome)
}

// apply records a submission result. Called with mu held.
func (c *Controller[F, D, R]) apply(err error) Outcome {
	if err == nil {
		c.failed = false
		c.logger.Info("%s: saved", c.name)
		return OutcomeSaved
	}

	var rejection FieldRejection
	if errors.As(err, &rejection) && len(rejection.FieldErrors()) > 0 {
		server := make(validation.Errors[F], len(rejection.FieldErrors()))
		for field, msg := range rejection.FieldErrors() {
			server[F(field)] = msg
		}
		c.errs = validation.Merge(c.errs, server)
		c.logger.Warn("%s: rejected by server: %v", c.name, err)
		return OutcomeRejected
	}

	c.failed = true
	c.logger.Error("%s: submit failed: %v", c.name, err)
	return OutcomeFailed
}

func (c *Controller[F, D, R]) observe(o Outcome) Outcome {
	c.metrics.ObserveSubmission(c.name, o.String())
	return o
}

// Dispose detaches the controller. A response still in flight is discarded and further
// submits are ignored.
func (c *Controller[F, D, R]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	c.token++
}

// Draft returns the current draft.
func (c *Controller[F, D, R]) Draft() D {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// State returns the submission state.
func (c *Controller[F, D, R]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Errors returns a copy of the per-field validation results.
func (c *Controller[F, D, R]) Errors() validation.Errors[F] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.Clone()
}

// HasError returns true if field currently shows an error.
func (c *Controller[F, D, R]) HasError(field F) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return validation.HasError(c.errs, field)
}

// Error returns the message shown for field, or "".
func (c *Controller[F, D, R]) Error(field F) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs[field]
}

// Failed returns the generic, non field-specific error flag.
func (c *Controller[F, D, R]) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}
