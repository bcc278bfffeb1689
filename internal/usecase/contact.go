package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bdgc-website/internal/contact"
	"bdgc-website/internal/domain"
	"bdgc-website/pkg/metrics"
	"bdgc-website/pkg/relay"
)

// Relay is the outbound side of the contact form.
type Relay interface {
	domain.Submitter
	IsConfigured() bool
}

type contactUsecase struct {
	validator *contact.Validator
	relay     Relay
	logger    *slog.Logger
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(v *contact.Validator, r Relay, logger *slog.Logger) domain.ContactUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &contactUsecase{
		validator: v,
		relay:     r,
		logger:    logger,
	}
}

// SendContactMessage runs one form through validation, the spam guard and
// the relay. A non-nil result is always returned; err is set when the form
// ended in error or could not be driven at all.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResult, error) {
	form := contact.NewForm(uc.validator, &instrumentedRelay{relay: uc.relay, logger: uc.logger}, uc.logger)

	// a client that goes away detaches the form; the relay call still finishes
	stop := context.AfterFunc(ctx, form.Abandon)
	defer stop()

	res, err := form.Submit(ctx, *req)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrFormAbandoned):
			metrics.IncContact(metrics.OutcomeAbandoned)
		default:
			metrics.IncContact(metrics.OutcomeInternal)
		}
		return &res, fmt.Errorf("failed to submit contact form: %w", err)
	}

	switch res.State {
	case domain.FormIdle:
		metrics.IncContact(metrics.OutcomeInvalid)
		uc.logger.Debug("contact form rejected by validation", "fields", len(res.FieldErrors))
		return &res, nil
	case domain.FormSuccess:
		if contact.IsSpam(req.Honeypot) {
			metrics.IncContact(metrics.OutcomeSpam)
			return &res, nil
		}
		metrics.IncContact(metrics.OutcomeSuccess)
		return &res, nil
	case domain.FormError:
		if errors.Is(res.Err, domain.ErrContactUnavailable) {
			metrics.IncContact(metrics.OutcomeNotEnabled)
			return &res, res.Err
		}
		if errors.Is(res.Err, relay.ErrTransport) {
			metrics.IncContact(metrics.OutcomeTransport)
		} else {
			metrics.IncContact(metrics.OutcomeRejected)
		}
		return &res, fmt.Errorf("%w: %w", domain.ErrRelayFailed, res.Err)
	}
	return &res, fmt.Errorf("contact form ended in unexpected state %q", res.State)
}

// instrumentedRelay times and logs each outbound call.
type instrumentedRelay struct {
	relay  Relay
	logger *slog.Logger
}

func (r *instrumentedRelay) Submit(ctx context.Context, sub domain.ContactSubmission) (*domain.Ack, error) {
	if !r.relay.IsConfigured() {
		r.logger.Error("contact relay access key missing, submission not sent")
		return nil, domain.ErrContactUnavailable
	}

	start := time.Now()
	ack, err := r.relay.Submit(ctx, sub)
	elapsed := time.Since(start)
	metrics.ObserveRelay(elapsed)

	if err != nil {
		r.logger.Warn("contact relay failed", "service", sub.Service, "duration", elapsed, "error", err)
		return nil, err
	}
	r.logger.Info("contact request relayed", "service", sub.Service, "duration", elapsed)
	return ack, nil
}
