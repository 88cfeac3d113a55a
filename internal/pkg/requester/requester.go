// Package requester implements the HTTP client shared by every backend resource service.
// It attaches the bearer token, encodes JSON or multipart bodies, decodes JSON or text
// responses based on the response content type, and returns backend error payloads
// unchanged as *APIError.
package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"game_store/internal/pkg/logger"
)

// Client issues authenticated requests against a single backend origin.
// The token is held by the client and replaced through SetToken, so services created
// before login pick up the token as soon as the session obtains one.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger

	mu    sync.RWMutex
	token string
}

// New creates a Client for baseURL. A nil httpClient gets a default client whose
// transport logs every request through l.
func New(baseURL string, httpClient *http.Client, l *logger.Logger) *Client {
	if l == nil {
		l = logger.Nop()
	}
	if httpClient == nil {
		httpClient = &http.Client{Transport: l.Transport(nil)}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        l,
	}
}

// SetToken replaces the bearer token attached to subsequent requests.
// An empty token sends requests without an Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the bearer token currently attached to requests.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// URL resolves path against the backend origin.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// Post issues a JSON-encoded POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a JSON-encoded PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

// Patch issues a JSON-encoded PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// PostForm submits form as multipart/form-data with POST.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any) error {
	return c.doForm(ctx, http.MethodPost, path, form, out)
}

// PutForm submits form as multipart/form-data with PUT.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any) error {
	return c.doForm(ctx, http.MethodPut, path, form, out)
}

// PatchForm submits form as multipart/form-data with PATCH.
func (c *Client) PatchForm(ctx context.Context, path string, form *Form, out any) error {
	return c.doForm(ctx, http.MethodPatch, path, form, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("requester: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) doForm(ctx context.Context, method, path string, form *Form, out any) error {
	if form == nil {
		form = NewForm()
	}
	body, contentType, err := form.encode()
	if err != nil {
		return fmt.Errorf("requester: encode form %s %s: %w", method, path, err)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return nil, fmt.Errorf("requester: build %s %s: %w", method, path, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(logger.RequestIDHeader, uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do sends req and decodes the response. Non-2xx responses become *APIError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("requester: read %s %s: %w", req.Method, req.URL.Path, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, ContentType: contentType, Body: body}
	}

	return decode(contentType, body, out)
}

// decode fills out from a successful response body.
// JSON bodies are unmarshalled; text bodies are only stored when out is a *string.
func decode(contentType string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if text, ok := out.(*string); ok && !isJSON(contentType) {
		*text = string(body)
		return nil
	}
	if !isJSON(contentType) {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("requester: decode response: %w", err)
	}
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}
