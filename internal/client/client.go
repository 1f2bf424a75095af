// Package client wraps the wellness server's HTTP endpoints for the CLI.
// The server keeps no session state, so there is no token to carry: every
// call is self-contained and the caller remembers who is signed in.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reda-h/wellness-companion/internal/dto"
)

// Client talks to one wellness server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// apiError extracts the server's {message} body from a non-2xx response.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("%s", envelope.Message)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account and returns the public user pair.
func (c *Client) Register(ctx context.Context, name, mail, password string) (dto.PublicUser, error) {
	var resp dto.RegisterResponse
	err := c.postJSON(ctx, "/register", dto.RegisterRequest{
		UserName: name,
		Mail:     mail,
		Password: password,
	}, &resp)
	return resp.User, err
}

// Login verifies credentials and returns the public user pair.
func (c *Client) Login(ctx context.Context, mail, password string) (dto.PublicUser, error) {
	var user dto.PublicUser
	err := c.postJSON(ctx, "/login", dto.LoginRequest{
		Mail:     mail,
		Password: password,
	}, &user)
	return user, err
}

// Users fetches the registered-user listing.
func (c *Client) Users(ctx context.Context) ([]dto.UserListItem, error) {
	var users []dto.UserListItem
	err := c.getJSON(ctx, "/users", &users)
	return users, err
}

// Chat sends one message to the wellness assistant.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var resp dto.ChatResponse
	err := c.postJSON(ctx, "/chat", dto.ChatRequest{Message: message}, &resp)
	return resp.Reply, err
}
