// Package relay entrega correos a través de un relay HTTP (POST /v1/messages).
package relay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"zoo-management/internal/platform/httpclient"
	"zoo-management/internal/ports/notify"
)

var (
	ErrRelayNotConfigured = errors.New("mail relay not configured")
	ErrRelayRejected      = errors.New("mail relay rejected message")
)

const sendPath = "/v1/messages"

// Config del relay. BaseURL y APIKey vienen de env en cmd/api.
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	// From es la dirección remitente; SenderTitle del mensaje va como nombre.
	From string

	Timeout time.Duration
}

type Client struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	from         string
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrRelayNotConfigured
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:         hc,
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		from:         strings.TrimSpace(cfg.From),
	}, nil
}

type sendRequest struct {
	From     string `json:"from,omitempty"`
	FromName string `json:"from_name,omitempty"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	HTML     bool   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send implementa notify.Notifier.
func (c *Client) Send(ctx context.Context, msg notify.Message) error {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers[c.apiKeyHeader] = c.apiKey
	}

	var out sendResponse
	err := c.http.DoJSON(ctx, http.MethodPost, sendPath, headers, sendRequest{
		From:     c.from,
		FromName: msg.SenderTitle,
		To:       msg.To,
		Subject:  msg.Subject,
		Body:     msg.Body,
		HTML:     msg.IsHTML,
	}, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("%w: status=%d", ErrRelayRejected, he.StatusCode)
		}
		return err
	}
	return nil
}
