package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bdgc-website/internal/carousel"
	"bdgc-website/internal/contact"
	"bdgc-website/internal/content"
	"bdgc-website/internal/domain"
	"bdgc-website/internal/gallery"
	"bdgc-website/internal/usecase"
	"bdgc-website/pkg/relay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Relay
type MockRelay struct {
	mock.Mock
}

func (m *MockRelay) Submit(ctx context.Context, sub domain.ContactSubmission) (*domain.Ack, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ack), args.Error(1)
}

func (m *MockRelay) IsConfigured() bool {
	return m.Called().Bool(0)
}

// parkedRelay holds every Submit until release is closed.
type parkedRelay struct {
	entered chan struct{}
	release chan struct{}
}

func (p *parkedRelay) Submit(ctx context.Context, sub domain.ContactSubmission) (*domain.Ack, error) {
	p.entered <- struct{}{}
	<-p.release
	return &domain.Ack{}, nil
}

func (p *parkedRelay) IsConfigured() bool { return true }

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Maria Lopez",
		Email:   "maria@example.com",
		Phone:   "(973) 555-0199",
		Service: string(domain.ServicePlumbing),
		Message: "Water heater is leaking in the basement.",
	}
}

func TestContactUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should relay a valid request once", func(t *testing.T) {
		r := new(MockRelay)
		r.On("IsConfigured").Return(true)
		r.On("Submit", mock.Anything, mock.MatchedBy(func(s domain.ContactSubmission) bool {
			return s.Name == "Maria Lopez" && s.Service == domain.ServicePlumbing
		})).Return(&domain.Ack{Message: "ok"}, nil).Once()
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)

		res, err := uc.SendContactMessage(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, domain.FormSuccess, res.State)
		r.AssertExpectations(t)
	})

	t.Run("Should relay concurrent requests independently", func(t *testing.T) {
		r := &parkedRelay{entered: make(chan struct{}, 2), release: make(chan struct{})}
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)

		var wg sync.WaitGroup
		results := make([]*domain.ContactResult, 2)
		errs := make([]error, 2)
		for i := range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], errs[i] = uc.SendContactMessage(ctx, validRequest())
			}()
		}

		for range 2 {
			select {
			case <-r.entered:
			case <-time.After(5 * time.Second):
				close(r.release)
				t.Fatal("second request did not reach the relay")
			}
		}
		close(r.release)
		wg.Wait()

		for i := range 2 {
			require.NoError(t, errs[i])
			assert.Equal(t, domain.FormSuccess, results[i].State)
		}
	})

	t.Run("Should return field errors without calling the relay", func(t *testing.T) {
		r := new(MockRelay)
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)
		req := validRequest()
		req.Message = "short"
		req.Service = ""

		res, err := uc.SendContactMessage(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, domain.FormIdle, res.State)
		assert.Len(t, res.FieldErrors, 2)
		r.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Should drop honeypot submissions silently", func(t *testing.T) {
		r := new(MockRelay)
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)
		req := validRequest()
		req.Honeypot = "x"

		res, err := uc.SendContactMessage(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, domain.FormSuccess, res.State)
		r.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Should report unavailable when the relay has no key", func(t *testing.T) {
		r := new(MockRelay)
		r.On("IsConfigured").Return(false)
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)

		res, err := uc.SendContactMessage(ctx, validRequest())

		assert.ErrorIs(t, err, domain.ErrContactUnavailable)
		assert.Equal(t, domain.FormError, res.State)
		assert.Equal(t, *validRequest(), res.Fields)
		r.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap relay failures and keep the fields", func(t *testing.T) {
		r := new(MockRelay)
		r.On("IsConfigured").Return(true)
		r.On("Submit", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: connection reset", relay.ErrTransport)).Once()
		uc := usecase.NewContactUsecase(contact.NewValidator(), r, nil)

		res, err := uc.SendContactMessage(ctx, validRequest())

		assert.ErrorIs(t, err, domain.ErrRelayFailed)
		assert.ErrorIs(t, err, relay.ErrTransport)
		assert.Equal(t, domain.FormError, res.State)
		assert.Equal(t, *validRequest(), res.Fields)
		r.AssertNumberOfCalls(t, "Submit", 1)
	})
}

func newShowcase(t *testing.T) domain.ShowcaseUsecase {
	t.Helper()
	site, err := content.Load()
	require.NoError(t, err)
	uc, err := usecase.NewShowcaseUsecase(site.Projects, site.Testimonials)
	require.NoError(t, err)
	return uc
}

func TestShowcaseUsecase_Gallery(t *testing.T) {
	uc := newShowcase(t)

	t.Run("Should default to all projects", func(t *testing.T) {
		view, err := uc.Gallery("", 0)
		require.NoError(t, err)
		assert.Equal(t, domain.CategoryAll, view.Filter)
		assert.Len(t, view.Items, 8)
		assert.Nil(t, view.Selected)
		assert.Equal(t, domain.CategoryAll, view.Categories[0])
	})

	t.Run("Should open a project with wrapped neighbours", func(t *testing.T) {
		view, err := uc.Gallery("Painting", 7)
		require.NoError(t, err)
		require.NotNil(t, view.Selected)
		assert.Equal(t, 7, view.Selected.ID)
		assert.Equal(t, 8, view.NextID)
		assert.Equal(t, 8, view.PrevID)
	})

	t.Run("Should reject unknown categories", func(t *testing.T) {
		_, err := uc.Gallery("Landscaping", 0)
		assert.ErrorIs(t, err, gallery.ErrUnknownCategory)
		assert.False(t, usecase.IsNotFound(err))
	})

	t.Run("Should not open a project outside the filter", func(t *testing.T) {
		_, err := uc.Gallery("Painting", 1)
		assert.ErrorIs(t, err, gallery.ErrNotInSubset)
		assert.True(t, usecase.IsNotFound(err))
	})
}

func TestShowcaseUsecase_Testimonials(t *testing.T) {
	uc := newShowcase(t)

	view, err := uc.Testimonials(0)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Prev)
	assert.Equal(t, 1, view.Next)
	assert.Equal(t, 6, view.Total)
	assert.Equal(t, "Michael Richardson", view.Current.Name)

	_, err = uc.Testimonials(6)
	assert.ErrorIs(t, err, carousel.ErrOutOfRange)
}

func TestNewShowcaseUsecase_NoTestimonials(t *testing.T) {
	_, err := usecase.NewShowcaseUsecase(nil, nil)
	assert.ErrorIs(t, err, carousel.ErrEmpty)
}

func TestHealthUsecase(t *testing.T) {
	out := usecase.NewHealthUsecase(false, nil).Check(context.Background())
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "not_configured", out["relay"])
	assert.Equal(t, "disabled", out["redis"])

	out = usecase.NewHealthUsecase(true, func(context.Context) error { return fmt.Errorf("down") }).Check(context.Background())
	assert.Equal(t, "configured", out["relay"])
	assert.Equal(t, "unavailable", out["redis"])
}
