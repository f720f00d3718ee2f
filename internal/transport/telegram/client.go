// Package telegram holds the outbound Bot API client. The inbound direction
// is a webhook and lives in transport/web; replies travel in the webhook
// response, so the only calls made here are webhook management.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sandevgo/notebot/pkg/log"
	"github.com/sandevgo/notebot/pkg/retry"
)

const DefaultAPIBaseURL = "https://api.telegram.org"

type Client struct {
	baseURL string
	http    *http.Client
	retrier *retry.Retrier
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		retrier: retry.NewDefaultRetrier(),
	}
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SetWebhook registers webhookURL as the callback for the bot identified by
// token. The call is retried with backoff; the Bot API is flaky enough under
// load that a single attempt loses registrations.
func (c *Client) SetWebhook(ctx context.Context, token, webhookURL string) error {
	endpoint := fmt.Sprintf("%s/bot%s/setWebhook", c.baseURL, token)

	err := c.retrier.Do(ctx, func() error {
		return c.call(ctx, endpoint, url.Values{"url": {webhookURL}})
	})
	if err != nil {
		return fmt.Errorf("setWebhook failed: %w", err)
	}

	log.FromCtx(ctx).Debug().Str("url", webhookURL).Msg("telegram webhook registered")
	return nil
}

// DeleteWebhook removes the bot's webhook registration.
func (c *Client) DeleteWebhook(ctx context.Context, token string) error {
	endpoint := fmt.Sprintf("%s/bot%s/deleteWebhook", c.baseURL, token)

	err := c.retrier.Do(ctx, func() error {
		return c.call(ctx, endpoint, url.Values{})
	})
	if err != nil {
		return fmt.Errorf("deleteWebhook failed: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, endpoint string, form url.Values) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode telegram response: %w", err)
	}
	if !body.OK {
		return fmt.Errorf("telegram rejected the request: %s", body.Description)
	}
	return nil
}
