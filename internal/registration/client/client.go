// Package client submits registration records to the relay route.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sofia-hackathon/registration/internal/registration/domain"
)

// SubmitPath is the relay route
const SubmitPath = "/api/submit"

// RelayClient posts form records to the relay
type RelayClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRelayClient creates a client for the relay at baseURL
func NewRelayClient(baseURL string) *RelayClient {
	return &RelayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Submit sends record as JSON. Any non-2xx answer is a failure; there is no retry.
func (c *RelayClient) Submit(ctx context.Context, record domain.FormRecord) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SubmitPath, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return nil
}
