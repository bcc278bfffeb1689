package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"bdgc-website/internal/domain"

	"github.com/looplab/fsm"
)

const (
	eventSubmit  = "submit"
	eventSucceed = "succeed"
	eventFail    = "fail"
	eventReset   = "reset"
)

var (
	// ErrSubmissionInFlight is returned when Submit is called while a previous
	// submission has not resolved yet. The call has no other effect.
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")
	// ErrFormCompleted is returned when Submit is called on a form that already
	// succeeded; Reset must be called first.
	ErrFormCompleted = errors.New("contact: form already submitted")
	// ErrFormAbandoned is returned once Abandon has been called.
	ErrFormAbandoned = errors.New("contact: form abandoned")
)

// Form drives one contact form through idle -> submitting -> success|error.
// It is safe for concurrent use; at most one submission is in flight.
type Form struct {
	mu        sync.Mutex
	machine   *fsm.FSM
	validator *Validator
	submitter domain.Submitter
	logger    *slog.Logger

	fields      domain.ContactRequest
	fieldErrors domain.FieldErrors
	lastErr     error
	abandoned   bool
}

func NewForm(v *Validator, s domain.Submitter, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.Default()
	}
	f := &Form{
		validator: v,
		submitter: s,
		logger:    logger,
	}

	idle := string(domain.FormIdle)
	submitting := string(domain.FormSubmitting)
	success := string(domain.FormSuccess)
	failed := string(domain.FormError)

	f.machine = fsm.NewFSM(
		idle,
		fsm.Events{
			{Name: eventSubmit, Src: []string{idle, failed}, Dst: submitting},
			{Name: eventSucceed, Src: []string{submitting}, Dst: success},
			{Name: eventFail, Src: []string{submitting}, Dst: failed},
			{Name: eventReset, Src: []string{success, failed}, Dst: idle},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				f.logger.Debug("contact form transition", "event", e.Event, "from", e.Src, "to", e.Dst)
			},
		},
	)
	return f
}

// State returns the current form state.
func (f *Form) State() domain.FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state()
}

// Snapshot returns the state, field errors and field values as the
// presentation layer should show them.
func (f *Form) Snapshot() domain.ContactResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshot()
}

// Submit validates req and, when valid and not spam, relays it once.
//
// A validation failure leaves the state unchanged and reports field errors.
// A filled honeypot ends in success without a network call. A relay error
// ends in error with the entered fields kept; success clears them.
func (f *Form) Submit(ctx context.Context, req domain.ContactRequest) (domain.ContactResult, error) {
	f.mu.Lock()
	if f.abandoned {
		defer f.mu.Unlock()
		return f.snapshot(), ErrFormAbandoned
	}
	switch f.state() {
	case domain.FormSubmitting:
		defer f.mu.Unlock()
		return f.snapshot(), ErrSubmissionInFlight
	case domain.FormSuccess:
		defer f.mu.Unlock()
		return f.snapshot(), ErrFormCompleted
	}

	f.fields = req
	sub, fieldErrors := f.validator.Validate(req)
	if len(fieldErrors) > 0 {
		f.fieldErrors = fieldErrors
		defer f.mu.Unlock()
		return f.snapshot(), nil
	}
	f.fieldErrors = nil
	f.lastErr = nil

	// transitions must land even when the caller's context is gone
	fsmCtx := context.WithoutCancel(ctx)
	if err := f.machine.Event(fsmCtx, eventSubmit); err != nil {
		defer f.mu.Unlock()
		return f.snapshot(), fmt.Errorf("contact: enter submitting: %w", err)
	}

	if IsSpam(req.Honeypot) {
		f.logger.Info("contact form honeypot filled, dropping submission")
		err := f.resolve(fsmCtx, nil)
		defer f.mu.Unlock()
		return f.snapshot(), err
	}
	f.mu.Unlock()

	// The outbound call is not tied to the caller's cancellation; Abandon only
	// discards its result.
	_, sendErr := f.submitter.Submit(fsmCtx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.abandoned {
		return f.snapshot(), ErrFormAbandoned
	}
	if err := f.resolve(fsmCtx, sendErr); err != nil {
		return f.snapshot(), err
	}
	return f.snapshot(), nil
}

// Reset returns a finished form to idle ("send another" after success, or an
// explicit retry after an error). Fields were already cleared on success and
// are kept after an error. Resetting an idle form is a no-op.
func (f *Form) Reset(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state() {
	case domain.FormIdle:
		return nil
	case domain.FormSubmitting:
		return ErrSubmissionInFlight
	case domain.FormSuccess:
		f.fields = domain.ContactRequest{}
	}
	f.fieldErrors = nil
	f.lastErr = nil
	if err := f.machine.Event(context.WithoutCancel(ctx), eventReset); err != nil {
		return fmt.Errorf("contact: reset: %w", err)
	}
	return nil
}

// Abandon detaches the form from whoever was waiting on it. An in-flight
// submission keeps running but its result is never applied.
func (f *Form) Abandon() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.abandoned {
		f.logger.Debug("contact form abandoned", "state", f.state())
	}
	f.abandoned = true
}

// resolve moves a submitting form to its terminal state. Callers hold mu.
func (f *Form) resolve(ctx context.Context, sendErr error) error {
	if sendErr != nil {
		f.lastErr = sendErr
		if err := f.machine.Event(ctx, eventFail); err != nil {
			return fmt.Errorf("contact: enter error: %w", err)
		}
		return nil
	}
	f.fields = domain.ContactRequest{}
	if err := f.machine.Event(ctx, eventSucceed); err != nil {
		return fmt.Errorf("contact: enter success: %w", err)
	}
	return nil
}

func (f *Form) state() domain.FormState {
	return domain.FormState(f.machine.Current())
}

func (f *Form) snapshot() domain.ContactResult {
	var fieldErrors domain.FieldErrors
	if len(f.fieldErrors) > 0 {
		fieldErrors = maps.Clone(f.fieldErrors)
	}
	return domain.ContactResult{
		State:       f.state(),
		FieldErrors: fieldErrors,
		Fields:      f.fields,
		Err:         f.lastErr,
	}
}
