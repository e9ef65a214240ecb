// Package client is a typed Go client for the quotedesk HTTP API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client handles all communication with the quotedesk API.
// It is not safe for concurrent use while the token is being changed.
type Client struct {
	BaseURL    string
	HttpClient *http.Client

	token string
}

// New creates a client for the API served at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{},
	}
}

// SetToken replaces the bearer token attached to subsequent requests.
// Login and Register set it automatically on success.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the bearer token currently in use, if any.
func (c *Client) Token() string {
	return c.token
}

// APIError is a non-2xx response decoded into the API's error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// do is the single, unified helper for making API requests. The client's
// bearer token, when set, is attached to every request.
func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// doInto performs the request, expects wantStatus, and decodes the response
// body into out (which may be nil when the body is not needed).
func (c *Client) doInto(method, path string, body any, wantStatus int, out any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		apiErr.Message = strings.TrimSpace(string(bodyBytes))
		return apiErr
	}
	apiErr.Message = envelope.Message
	apiErr.Errors = envelope.Errors
	return apiErr
}
