package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jwebster45206/mathbrain/pkg/dialog"
)

// PollInterval is how often WaitForHealthy checks the service
const PollInterval = 500 * time.Millisecond

// PostTurn sends one webhook call and decodes the reply
func PostTurn(ctx context.Context, client *http.Client, url string, turn *dialog.Request) (*dialog.Response, error) {
	reqBody, err := json.Marshal(turn)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal turn: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create turn request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send turn: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("webhook returned %d: %s", resp.StatusCode, string(body))
	}

	var out dialog.Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode reply: %w", err)
	}
	return &out, nil
}

// WaitForHealthy polls /health until the service answers 200 or ctx is done
func WaitForHealthy(ctx context.Context, client *http.Client, baseURL string) error {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return fmt.Errorf("failed to create health request: %w", err)
		}
		if resp, err := client.Do(req); err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("service at %s never became healthy: %w", baseURL, ctx.Err())
		case <-ticker.C:
		}
	}
}
