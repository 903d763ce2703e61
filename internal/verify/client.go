package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Failure kinds surfaced by the Client. The gate maps all of them to the
// same user-facing text; they are distinguished only for tests and logs.
var (
	ErrAuthentication = errors.New("verify: access denied")
	ErrValidation     = errors.New("verify: invalid request")
	ErrConfiguration  = errors.New("verify: server misconfigured")
	ErrTransport      = errors.New("verify: request failed")
)

// Client calls the verification endpoint over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client against the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Verify submits the password and returns nil on a match. Any failure is
// one of the Err* kinds above.
func (c *Client) Verify(ctx context.Context, password string) error {
	payload, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+Path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if body.Success && resp.StatusCode == http.StatusOK {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuthentication
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusInternalServerError:
		return ErrConfiguration
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrTransport, resp.StatusCode)
	}
}
