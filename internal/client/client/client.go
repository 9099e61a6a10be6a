// Package client implements the HTTP client for the matchly auth API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/matchly/internal/common"
)

const requestTimeout = 10 * time.Second

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client talks to the auth server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) post(ctx context.Context, path string, body any) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// Register creates a new account. A duplicate or invalid username surfaces
// the server-provided message.
func (c *Client) Register(ctx context.Context, username string, password []byte) error {
	resp, err := c.post(ctx, "/api/auth/register", credentialsRequest{
		Username: username,
		Password: string(password),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		return nil
	}

	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return errors.New(errResp.Error)
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// Login verifies credentials and returns the issued token.
// Invalid credentials yield common.ErrorUnauthorized.
func (c *Client) Login(ctx context.Context, username string, password []byte) (string, error) {
	resp, err := c.post(ctx, "/api/auth/login", credentialsRequest{
		Username: username,
		Password: string(password),
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var loginResp loginResponse
		if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
			return "", err
		}
		return loginResp.Token, nil
	case http.StatusUnauthorized:
		return "", common.ErrorUnauthorized
	default:
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
