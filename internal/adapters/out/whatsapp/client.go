// Package whatsapp sends template messages through the WhatsApp Business
// Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/pkg/errs"
)

const (
	DefaultAPIRoot = "https://graph.facebook.com/v18.0"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 4 << 10
)

// ErrNoMessageID is returned when the API accepted the request but did not
// report a message id.
var ErrNoMessageID = errors.New("whatsapp response has no message id")

// Config holds the Cloud API endpoint and credentials. AccessToken is a
// secret and is never included in errors or logs.
type Config struct {
	APIRoot     string
	PhoneID     string
	AccessToken string
}

// APIError is a non-2xx response from the Cloud API.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("whatsapp api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("whatsapp api returned status %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
}

// Client implements ports.NotificationSender. Timeouts come from the caller's
// context.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	if cfg.PhoneID == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp phone id")
	}
	if cfg.AccessToken == "" {
		return nil, errs.NewValueIsRequiredError("whatsapp access token")
	}
	if cfg.APIRoot == "" {
		cfg.APIRoot = DefaultAPIRoot
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:    strings.TrimRight(cfg.APIRoot, "/") + "/" + cfg.PhoneID + "/messages",
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}, nil
}

// Send posts one template message to one phone and returns the provider's
// message id. The recipient is sent as digits only.
func (c *Client) Send(ctx context.Context, to kernel.PhoneNumber, template notification.Template) (string, error) {
	if err := to.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(newTemplateRequest(to.Digits(), template))
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send %s: %w", template.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", decodeAPIError(resp)
	}

	var decoded sendResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode whatsapp response: %w", err)
	}
	if len(decoded.Messages) == 0 || decoded.Messages[0].ID == "" {
		return "", ErrNoMessageID
	}

	return decoded.Messages[0].ID, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var decoded errorResponse
	if json.Unmarshal(raw, &decoded) == nil && decoded.Error.Message != "" {
		apiErr.Code = decoded.Error.Code
		apiErr.Message = decoded.Error.Message
		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(raw))
	return apiErr
}
