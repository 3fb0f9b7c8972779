package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"premierlodge/models"
	"premierlodge/utils"

	"go.uber.org/zap"
)

// Client executes single requests against the upstream PMS API. It owns no
// state across calls and is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  utils.TokenStore
	logger  *zap.Logger
}

// Options carries per-request overrides. Caller-supplied headers win over
// computed defaults, except that a multipart body always drops content-type.
type Options struct {
	Headers map[string]string
}

func New(baseURL string, tokens utils.TokenStore, logger *zap.Logger) *Client {
	if logger == nil {
		logger = utils.GetLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

// Do builds and executes one request and normalizes the response into a typed
// envelope. Non-2xx statuses return a *RequestError; transport and decode
// failures propagate unmodified after being logged.
func Do[T any](ctx context.Context, c *Client, method, rawURL string, body any, opts *Options) (models.Envelope[T], error) {
	var zero models.Envelope[T]

	req, err := c.newRequest(ctx, method, rawURL, body, opts)
	if err != nil {
		return zero, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("request transport failure",
			zap.String("method", method), zap.String("url", req.URL.String()), zap.Error(err))
		return zero, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response body",
			zap.String("url", req.URL.String()), zap.Error(err))
		return zero, err
	}

	isJSON := strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json")

	// A 401 invalidates the stored credential before any error is raised, so
	// later requests in the session no longer attempt authenticated access.
	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.tokens.Clear(ctx); clearErr != nil {
			c.logger.Error("failed to clear bearer token after 401", zap.Error(clearErr))
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var data any
		if isJSON {
			if err := json.Unmarshal(raw, &data); err != nil {
				data = string(raw)
			}
		} else {
			data = string(raw)
		}
		reqErr := &RequestError{
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Data:       data,
		}
		c.logger.Warn("request returned error status",
			zap.String("method", method),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		return zero, reqErr
	}

	var env models.Envelope[T]
	if isJSON {
		if err := json.Unmarshal(raw, &env); err != nil {
			c.logger.Error("failed to decode response envelope",
				zap.String("url", req.URL.String()), zap.Error(err))
			return zero, fmt.Errorf("failed to decode response envelope: %w", err)
		}
	} else {
		// Non-JSON success bodies are captured as raw text.
		env = models.Envelope[T]{Success: true, Message: strings.TrimSpace(string(raw))}
	}
	if env.Status == 0 {
		env.Status = resp.StatusCode
	}
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, body any, opts *Options) (*http.Request, error) {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case *MultipartPayload:
		reader = b.Body
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolveURL(rawURL), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	token, err := c.tokens.Get(ctx)
	if err != nil {
		c.logger.Warn("credential store lookup failed, proceeding unauthenticated", zap.Error(err))
		token = ""
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range mergeHeaders(body, opts) {
		req.Header.Set(key, value)
	}
	if mp, ok := body.(*MultipartPayload); ok {
		// The multipart encoder owns the boundary.
		req.Header.Set("Content-Type", mp.ContentType)
	}
	return req, nil
}

// mergeHeaders computes the descriptor-level header set: JSON default first,
// then caller overrides, then the multipart strip. The merged set never
// contains a content-type entry for multipart bodies.
func mergeHeaders(body any, opts *Options) map[string]string {
	headers := make(map[string]string)

	_, isMultipart := body.(*MultipartPayload)
	if body != nil && !isMultipart {
		headers["Content-Type"] = "application/json"
	}
	if opts != nil {
		for key, value := range opts.Headers {
			headers[textproto.CanonicalMIMEHeaderKey(key)] = value
		}
	}
	if isMultipart {
		delete(headers, "Content-Type")
	}
	return headers
}

func (c *Client) resolveURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		return rawURL
	}
	if !strings.HasPrefix(rawURL, "/") {
		rawURL = "/" + rawURL
	}
	return c.baseURL + rawURL
}
