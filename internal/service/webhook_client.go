package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/maheshrc27/content-planner/internal/metrics"
)

const (
	EndpointContentGenerator = "content-generator"
	EndpointSchedulerSync    = "content-scheduler-sync"
)

var ErrWebhookNotConfigured = errors.New("Automation webhook URL is not configured")

// WebhookClient posts JSON payloads to the content automation workflow.
type WebhookClient interface {
	Post(ctx context.Context, endpoint string, payload any) error
}

type webhookClient struct {
	baseURL string
	http    *http.Client
	metrics metrics.Recorder
}

func NewWebhookClient(baseURL string, m metrics.Recorder) WebhookClient {
	return &webhookClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		metrics: m,
	}
}

func (c *webhookClient) Post(ctx context.Context, endpoint string, payload any) error {
	if c.baseURL == "" {
		return ErrWebhookNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", endpoint, err)
	}

	url := c.baseURL + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordWebhook(endpoint, 0)
		slog.Info(err.Error())
		return fmt.Errorf("calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordWebhook(endpoint, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Info("webhook returned an error", "endpoint", endpoint, "status", resp.StatusCode, "body", string(snippet))
		return fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
