// Package client 呼叫 La Cave API 的 Go 用戶端，依資源分組
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"la-cave/internal/api"
)

const defaultBaseURL = "http://localhost:5000/api"

// APIError 非 2xx 回應；Message 優先使用伺服器回傳的訊息
type APIError struct {
	Status  int
	Message string
	Errors  []api.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	logf    func(format string, args ...any)

	Menu         *MenuService
	Reservations *ReservationService
	Reviews      *ReviewService
	Auth         *AuthService
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogf 設定讀取失敗降級時的記錄函式
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *Client) { c.logf = logf }
}

// NormalizeBaseURL 去掉結尾斜線，http(s) 網址缺少 /api 時補上
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return defaultBaseURL
	}
	u = strings.TrimRight(u, "/")
	if !strings.HasSuffix(u, "/api") && (strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")) {
		u += "/api"
	}
	return u
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: NormalizeBaseURL(baseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
		logf:    log.Printf,
	}
	for _, o := range opts {
		o(c)
	}
	c.Menu = &MenuService{c: c}
	c.Reservations = &ReservationService{c: c}
	c.Reviews = &ReviewService{c: c}
	c.Auth = &AuthService{c: c}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope 對應伺服器的 {success, count, data, message}
type envelope[T any] struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// do 送出 JSON 請求；session 中有 token 時附上 Bearer
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if s, ok := SessionFrom(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var er api.ErrorResponse
		if json.Unmarshal(raw, &er) == nil && er.Message != "" {
			apiErr.Message = er.Message
			apiErr.Errors = er.Errors
		} else {
			apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Health 後端是否可連線
func (c *Client) Health(ctx context.Context) bool {
	return c.do(ctx, http.MethodGet, "/health", nil, nil) == nil
}
