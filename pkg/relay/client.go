// Package relay posts contact submissions to a hosted form-to-email service
// (Web3Forms compatible).
package relay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bdgc-website/internal/domain"

	"github.com/goccy/go-json"
)

const (
	DefaultEndpoint = "https://api.web3forms.com/submit"
	DefaultFromName = "B&D General Contractor Website"
	DefaultTimeout  = 15 * time.Second

	// PlaceholderAccessKey is shipped in sample configs; a client holding it
	// is not considered configured.
	PlaceholderAccessKey = "YOUR_ACCESS_KEY_HERE"

	maxResponseBytes = 64 << 10
)

var (
	// ErrTransport covers everything that prevented a response from arriving:
	// DNS, dial, reset, timeout.
	ErrTransport = errors.New("relay: transport failure")
	// ErrRejected means the endpoint answered but did not accept the
	// submission.
	ErrRejected = errors.New("relay: submission rejected")
)

type Config struct {
	Endpoint  string
	AccessKey string
	FromName  string
	Timeout   time.Duration
}

// Client sends each submission with exactly one POST. It never retries.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient fills unset Config fields with the package defaults.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// HTTPClient exposes the underlying client so tests can intercept it.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// IsConfigured reports whether a real access key is set.
func (c *Client) IsConfigured() bool {
	key := strings.TrimSpace(c.cfg.AccessKey)
	return key != "" && key != PlaceholderAccessKey
}

type payload struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Botcheck  string `json:"botcheck"`
}

type reply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Subject is the e-mail subject the relay uses for sub.
func Subject(sub domain.ContactSubmission) string {
	return fmt.Sprintf("New Quote Request from %s - %s", sub.Name, sub.Service)
}

// Submit relays sub. Errors wrap ErrTransport or ErrRejected.
func (c *Client) Submit(ctx context.Context, sub domain.ContactSubmission) (*domain.Ack, error) {
	body, err := json.Marshal(payload{
		AccessKey: c.cfg.AccessKey,
		Subject:   Subject(sub),
		FromName:  c.cfg.FromName,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Service:   string(sub.Service),
		Message:   sub.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("relay: encode submission: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}

	var r reply
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("%w: status %d, response is not JSON", ErrRejected, resp.StatusCode)
	}
	if !r.Success {
		msg := r.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return &domain.Ack{Message: r.Message}, nil
}
