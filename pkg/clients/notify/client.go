package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Hardik699/Hanuram1-sub001/internal/config"
)

// Client posts plain text summaries to a chat or automation webhook.
type Client interface {
	Send(ctx context.Context, text string) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	restyClient := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if cfg.Token != "" {
		restyClient.SetAuthToken(cfg.Token)
	}

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

type message struct {
	Text string `json:"text"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Send posts text as {"text": ...}. Any non-2xx response is an error.
func (c *WebhookClient) Send(ctx context.Context, text string) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(message{Text: text}).
		SetError(apiErr).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusMultipleChoices {
		detail := apiErr.Message
		if detail == "" {
			detail = apiErr.Error
		}
		return fmt.Errorf("notification webhook error: status=%d, message=%s", resp.StatusCode(), detail)
	}

	return nil
}
