package client

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

	"github.com/johnwards/caretrain/internal/domain"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	OrgCode   string      `json:"orgCode"`
	Role      domain.Role `json:"role"`
}

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	User    domain.User `json:"user"`
	Message string      `json:"message"`
}

// ErrUnexpectedBody is returned when the server accepts a registration but the
// response body cannot be decoded.
var ErrUnexpectedBody = errors.New("unexpected response body")

// APIError is returned when the server rejects a request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client is a registration API client. The zero HTTPClient uses
// http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Register issues a single POST /auth/register. Non-2xx responses are
// returned as *APIError. A 2xx response whose body is not a registration
// result returns an empty response together with ErrUnexpectedBody.
func (c *Client) Register(ctx context.Context, reg RegisterRequest) (*RegisterResponse, error) {
	body, err := json.Marshal(reg)
	if err != nil {
		return nil, fmt.Errorf("marshal registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/register", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("post registration: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	var out RegisterResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return &RegisterResponse{}, fmt.Errorf("%w: %v", ErrUnexpectedBody, err)
	}
	return &out, nil
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(status)
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: status, Message: msg}
}

// DemoRegistration is the fixed account RunDemoRegistration creates.
var DemoRegistration = RegisterRequest{
	Email:     "trainee@demo.caretrain.dev",
	Password:  "password123",
	FirstName: "Jamie",
	LastName:  "Taylor",
	OrgCode:   "DEMO-CARE",
	Role:      domain.RoleStaff,
}

// RunDemoRegistration registers DemoRegistration and prints the outcome to
// out. Rejections and network failures are reported, not returned.
func RunDemoRegistration(ctx context.Context, c *Client, out io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	resp, err := c.Register(ctx, DemoRegistration)
	if errors.Is(err, ErrUnexpectedBody) {
		logger.Warn("registration accepted with unreadable response", "error", err)
		_, _ = fmt.Fprintln(out, "Registration successful")
		return nil
	}
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			_, _ = fmt.Fprintf(out, "Registration failed: %s\n", apiErr.Message)
			return nil
		}
		logger.Error("registration request failed", "url", c.BaseURL, "error", err)
		return nil
	}

	_, _ = fmt.Fprintf(out, "Registration successful: %s (%s)\n", resp.User.Email, resp.User.Role)
	if resp.Message != "" {
		_, _ = fmt.Fprintln(out, resp.Message)
	}
	return nil
}
