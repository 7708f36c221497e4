// Package vapi provides a client for the Vapi voice platform: outbound
// call creation and assistant provisioning. Only the fields this system
// sends and reads are modeled.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the Vapi API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config configures the Vapi client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new Vapi client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.vapi.ai"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Customer identifies the callee of an outbound call.
type Customer struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// AssistantOverrides carries per-call variable bindings.
type AssistantOverrides struct {
	VariableValues map[string]string `json:"variableValues,omitempty"`
}

// CallRequest starts an outbound call from a platform phone number.
type CallRequest struct {
	AssistantID        string              `json:"assistantId"`
	PhoneNumberID      string              `json:"phoneNumberId"`
	Customer           Customer            `json:"customer"`
	AssistantOverrides *AssistantOverrides `json:"assistantOverrides,omitempty"`
}

// Call is the subset of the call object this system reads.
type Call struct {
	ID string `json:"id"`
}

// ModelMessage is one system/user message in the assistant model config.
type ModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Model configures the assistant's language model.
type Model struct {
	Provider string         `json:"provider"`
	Model    string         `json:"model"`
	Messages []ModelMessage `json:"messages"`
}

// Voice configures the assistant's TTS voice.
type Voice struct {
	Provider        string  `json:"provider"`
	VoiceID         string  `json:"voiceId"`
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarityBoost"`
}

// AssistantRequest creates a live voice assistant.
type AssistantRequest struct {
	Name                  string `json:"name"`
	FirstMessage          string `json:"firstMessage"`
	Model                 Model  `json:"model"`
	Voice                 Voice  `json:"voice"`
	MaxDurationSeconds    int    `json:"maxDurationSeconds"`
	EndCallMessage        string `json:"endCallMessage"`
	SilenceTimeoutSeconds int    `json:"silenceTimeoutSeconds"`
}

// Assistant is the subset of the assistant object this system reads.
type Assistant struct {
	ID string `json:"id"`
}

type apiError struct {
	Message string `json:"message"`
}

// CreateCall issues a single outbound call.
func (c *Client) CreateCall(ctx context.Context, req CallRequest) (Call, error) {
	var call Call
	if err := c.post(ctx, "/call", req, &call); err != nil {
		return Call{}, err
	}
	return call, nil
}

// CreateAssistant provisions a new voice assistant.
func (c *Client) CreateAssistant(ctx context.Context, req AssistantRequest) (Assistant, error) {
	var assistant Assistant
	if err := c.post(ctx, "/assistant", req, &assistant); err != nil {
		return Assistant{}, err
	}
	return assistant, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal vapi request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create vapi request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("vapi request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read vapi response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("vapi returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("vapi returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode vapi response: %w", err)
	}

	return nil
}
