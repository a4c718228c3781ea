// Package taskapi is a typed HTTP client for the task tracker API. It covers
// the full surface: registration, the MFA login flow, task CRUD, and the
// admin endpoints. The end-to-end tests drive the service through it.
package taskapi

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

// Client talks to a task tracker instance. Token holds the current bearer
// credential (session or pending); callers swap it as the login flow
// progresses.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client using the given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

func (c *Client) Ping(ctx context.Context) (PingResponse, error) {
	var out PingResponse
	err := c.do(ctx, http.MethodGet, "/ping", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/register", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", req, &out, http.StatusOK)
	return out, err
}

// SetupMFA starts TOTP enrollment. The client's Token must be a pending or
// session credential for the account being enrolled.
func (c *Client) SetupMFA(ctx context.Context) (MFASetupResponse, error) {
	var out MFASetupResponse
	err := c.do(ctx, http.MethodPost, "/auth/mfa/setup", nil, &out, http.StatusOK)
	return out, err
}

// VerifyMFASetup confirms enrollment with a code and returns the upgraded
// session credential.
func (c *Client) VerifyMFASetup(ctx context.Context, req MFAVerifyRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/mfa/verify", req, &out, http.StatusOK)
	return out, err
}

// VerifyMFALogin completes a challenged login with a code.
func (c *Client) VerifyMFALogin(ctx context.Context, req MFAVerifyRequest) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/mfa/login", req, &out, http.StatusOK)
	return out, err
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	err := c.do(ctx, http.MethodGet, "/todos", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPost, "/todos", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) UpdateTask(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error) {
	var out Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), nil, nil, http.StatusNoContent)
}

func (c *Client) ListUsers(ctx context.Context) ([]UserInfo, error) {
	var out []UserInfo
	err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, req AdminCreateUserRequest) (UserInfo, error) {
	var out UserInfo
	err := c.do(ctx, http.MethodPost, "/admin/users", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role string) (UserInfo, error) {
	var out UserInfo
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d", id), UpdateRoleRequest{Role: role}, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, http.StatusNoContent)
}

func (c *Client) ListLoginHistory(ctx context.Context, userID int64) ([]LoginRecord, error) {
	var out []LoginRecord
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d/logins", userID), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseAPIError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
