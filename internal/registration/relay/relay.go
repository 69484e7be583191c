// Package relay forwards registration records to the external spreadsheet endpoint.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sofia-hackathon/registration/internal/logging"
	"github.com/sofia-hackathon/registration/internal/metrics"
	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

// Relay is a stateless pass-through to the external endpoint. It is safe for concurrent use.
type Relay struct {
	endpoint   string
	httpClient *http.Client
	policy     StatusPolicy
	now        func() time.Time
	metrics    *metrics.RelayMetrics
}

// Option configures a Relay
type Option func(*Relay)

// WithHTTPClient replaces the outbound client. Its redirect policy is overridden so
// redirects are reported instead of followed.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Relay) {
		clone := *c
		r.httpClient = &clone
	}
}

// WithStatusPolicy replaces DefaultStatusPolicy
func WithStatusPolicy(p StatusPolicy) Option {
	return func(r *Relay) {
		r.policy = p
	}
}

// WithClock sets the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(r *Relay) {
		r.now = now
	}
}

// WithMetrics records every forward attempt
func WithMetrics(m *metrics.RelayMetrics) Option {
	return func(r *Relay) {
		r.metrics = m
	}
}

// New creates a relay for endpoint. An empty endpoint yields a relay that
// refuses every record with ErrNotConfigured.
func New(endpoint string, opts ...Option) *Relay {
	r := &Relay{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		policy:     DefaultStatusPolicy,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return r
}

// Configured reports whether a destination is set
func (r *Relay) Configured() bool {
	return r.endpoint != ""
}

// Forward sends rec to the external endpoint in a single attempt
func (r *Relay) Forward(ctx context.Context, rec domain.FormRecord) error {
	logger := logging.New(ctx)

	if !r.Configured() {
		logger.LogErrorf("relay_forward", "external endpoint is not set")
		r.metrics.ObserveForward(metrics.OutcomeNotConfigured, 0)
		return ErrNotConfigured
	}

	body, err := json.Marshal(NewPayload(rec, r.now()))
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		// the parse error would echo the endpoint
		logger.LogErrorf("relay_forward", "invalid external endpoint")
		r.metrics.ObserveForward(metrics.OutcomeNotConfigured, 0)
		return ErrNotConfigured
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError("relay_forward", err)
		r.metrics.ObserveForward(metrics.OutcomeTransportError, duration)
		return fmt.Errorf("%w: %w", ErrTransport, unwrapURLError(err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	r.metrics.ObserveStatus(resp.StatusCode)

	if err := r.policy(resp.StatusCode); err != nil {
		logger.LogWarnf("relay_forward", "external endpoint returned status %d", resp.StatusCode)
		r.metrics.ObserveForward(outcomeFor(err), duration)
		return err
	}

	logger.LogInfof("relay_forward", "accepted student_id=%s status=%d latency=%s", rec.StudentID, resp.StatusCode, duration)
	r.metrics.ObserveForward(metrics.OutcomeSuccess, duration)
	return nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrExternalServer):
		return metrics.OutcomeExternalError
	default:
		return metrics.OutcomeUnexpectedError
	}
}

// unwrapURLError strips the *url.Error wrapper, which carries the endpoint URL
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}
