package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"auth-gateway/internal/provider"
)

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 1 << 20

// client is the shared REST plumbing for one credential scope. The
// apikey header always carries the scope key; the bearer is either a
// caller token or, when none is given, the scope key itself.
type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func newClient(baseURL, apiKey string, timeout time.Duration) client {
	return client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c client) do(
	ctx context.Context,
	method string,
	path string,
	token string,
	headers map[string]string,
	body any,
	out any,
) error {

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("supabase: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("supabase: build request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)

	bearer := token
	if bearer == "" {
		bearer = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("supabase: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("supabase: read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return parseError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("supabase: decode response: %w", err)
		}
	}

	return nil
}

// parseError normalizes the provider's error dialects (auth API uses
// msg/error_code, the table API uses message/code, the token endpoint
// uses error/error_description) into a single classified error.
func parseError(status int, body []byte) *provider.Error {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return &provider.Error{
			Status:  status,
			Message: strings.TrimSpace(string(body)),
		}
	}

	msg := firstString(payload, "msg", "message", "error_description", "error")
	if msg == "" {
		msg = http.StatusText(status)
	}

	code := firstString(payload, "error_code")
	if code == "" {
		// the table API uses "code" with a string value; the auth API
		// reuses the same key for the numeric status, which we skip
		if s, ok := payload["code"].(string); ok {
			code = s
		}
	}

	return &provider.Error{Status: status, Code: code, Message: msg}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
