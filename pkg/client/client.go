// Package client is a stateless HTTP client for the lichess bot API. It
// covers the REST endpoints a bot needs (challenges, moves, chat, account)
// and the two NDJSON streams (account events and per-game events). All
// methods are safe for concurrent use.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// BotClient issues authenticated requests against one API root. Build one
// through Builder.
type BotClient struct {
	httpClient    *http.Client
	baseURL       string
	authorization string
}

// joinURL glues a path onto the API root: exactly one trailing slash is
// stripped from the root and exactly one leading slash is ensured on the
// path, so "root/" + "path" and "root" + "/path" produce the same URL.
func (c *BotClient) joinURL(path string) string {
	base := strings.TrimSuffix(c.baseURL, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// do sends the request with the bearer credential attached and returns the
// response if its status is 2xx. Any other status is drained into an
// *APIError.
func (c *BotClient) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", c.authorization)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return resp, nil
}

// getJSON issues a GET and decodes the response body into out.
func (c *BotClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.joinURL(path), nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// post issues a POST with the given body (nil for an empty request) and
// discards the response body.
func (c *BotClient) post(ctx context.Context, path, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.joinURL(path), body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

// postJSON issues a POST carrying v encoded as a JSON body.
func (c *BotClient) postJSON(ctx context.Context, path string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.post(ctx, path, "application/json", bytes.NewReader(payload))
}

// postForm issues a POST carrying form urlencoded in the body.
func (c *BotClient) postForm(ctx context.Context, path string, form url.Values) error {
	return c.post(ctx, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// stream issues a GET and hands the still-open response body to the caller.
func (c *BotClient) stream(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.joinURL(path), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
