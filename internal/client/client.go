// Package client wraps the identity API the way the dashboard calls it:
// passwords are digested before they leave the process, login failures carry
// the HTTP status so forms can blame the right field, and a transport
// failure is reported as status 0.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/taskflowhq/taskflow/internal/security"
	"github.com/taskflowhq/taskflow/internal/session"
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for an API base URL like "http://localhost:5254/api".
// The underlying transport keeps its defaults; cancellation comes from the
// caller's context only.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// LoginResult is the tagged outcome of a login attempt. Status is the HTTP
// status of the failure, or 0 when no response arrived at all.
type LoginResult struct {
	Success bool
	User    session.User
	Error   string
	Status  int
}

// FieldErrors maps a failed result onto form fields. Anything unmapped is a
// page-level error the form shows via Error.
func (r LoginResult) FieldErrors(email, password string) map[string]string {
	if r.Success {
		return nil
	}

	switch r.Status {
	case http.StatusUnauthorized:
		return map[string]string{"password": "Invalid email or password"}
	case http.StatusNotFound:
		return map[string]string{"email": "No account found with this email"}
	case http.StatusBadRequest:
		fields := map[string]string{}
		if email == "" {
			fields["email"] = "Email is required"
		}
		if password == "" {
			fields["password"] = "Password is required"
		}
		if len(fields) == 0 {
			return nil
		}
		return fields
	default:
		return nil
	}
}

type messageResponse struct {
	Message string       `json:"message"`
	User    session.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) LoginResult {
	body := map[string]string{
		"email":    email,
		"password": security.Digest(password),
	}

	resp, raw, err := c.postJSON(ctx, "/auth/login", body)
	if err != nil {
		return LoginResult{
			Error:  "Network error. Please check your connection.",
			Status: 0,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Login failed"

		var parsed messageResponse
		if jsonErr := json.Unmarshal(raw, &parsed); jsonErr != nil {
			return LoginResult{
				Error:  "An unexpected error occurred",
				Status: resp.StatusCode,
			}
		}
		if parsed.Message != "" {
			msg = parsed.Message
		}

		return LoginResult{Error: msg, Status: resp.StatusCode}
	}

	var parsed messageResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr != nil {
		return LoginResult{
			Error:  "Invalid response from server",
			Status: http.StatusInternalServerError,
		}
	}

	return LoginResult{Success: true, User: parsed.User}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Register creates an account and returns the sanitized user payload. A
// non-2xx response surfaces as an error carrying the server's message.
func (c *Client) Register(ctx context.Context, in RegisterInput) (session.User, error) {
	body := map[string]string{
		"username":     in.Username,
		"email":        in.Email,
		"passwordHash": security.Digest(in.Password),
		"firstName":    in.FirstName,
		"lastName":     in.LastName,
	}

	resp, raw, err := c.postJSON(ctx, "/auth/register", body)
	if err != nil {
		return session.User{}, errors.New("Network error. Please check your connection.")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "Registration failed"

		var parsed messageResponse
		if jsonErr := json.Unmarshal(raw, &parsed); jsonErr == nil && parsed.Message != "" {
			msg = parsed.Message
		}

		return session.User{}, errors.New(msg)
	}

	var parsed messageResponse
	if jsonErr := json.Unmarshal(raw, &parsed); jsonErr != nil {
		return session.User{}, errors.New("Invalid response from server")
	}

	return parsed.User, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return resp, raw, nil
}
