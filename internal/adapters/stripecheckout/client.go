// Package stripecheckout provides a client for the Stripe Checkout and
// webhook surface this system uses. Only the fields this system sends and
// reads are modeled.
package stripecheckout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the Stripe REST API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Config configures the Stripe client.
type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// NewClient creates a new Stripe client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SessionRequest describes a subscription checkout session.
type SessionRequest struct {
	CustomerEmail string
	PriceID       string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// Session is the subset of Stripe's checkout session object this system reads.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession opens a hosted subscription checkout session with one
// price line item (quantity 1).
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (Session, error) {
	params := url.Values{}
	params.Set("mode", "subscription")
	params.Set("customer_email", req.CustomerEmail)
	params.Set("line_items[0][price]", req.PriceID)
	params.Set("line_items[0][quantity]", "1")
	params.Set("success_url", req.SuccessURL)
	params.Set("cancel_url", req.CancelURL)
	for key, value := range req.Metadata {
		params.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	endpoint := c.baseURL + "/v1/checkout/sessions"
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return Session{}, fmt.Errorf("create checkout session request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.secretKey)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return Session{}, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, fmt.Errorf("read checkout session response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return Session{}, fmt.Errorf("stripe returned %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return Session{}, fmt.Errorf("stripe returned %d: %s", resp.StatusCode, string(body))
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return Session{}, fmt.Errorf("decode checkout session response: %w", err)
	}

	return session, nil
}
