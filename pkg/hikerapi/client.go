package hikerapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"igstats/pkg/config"
	"igstats/pkg/logger"
)

// Error types for HikerAPI operations
type ErrorType string

const (
	ErrorTypeNetwork     ErrorType = "network"
	ErrorTypeRateLimit   ErrorType = "rate_limit"
	ErrorTypeAuth        ErrorType = "auth"
	ErrorTypeParsing     ErrorType = "parsing"
	ErrorTypeNotFound    ErrorType = "not_found"
	ErrorTypeServerError ErrorType = "server_error"
	ErrorTypeUnknown     ErrorType = "unknown"
)

// maxErrorBody caps how much of an error response is read for its detail
const maxErrorBody = 4096

// Error represents a HikerAPI error
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("hikerapi %s error (code %d): %s", e.Type, e.Code, e.Message)
}

// Client represents a HikerAPI client
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	logger     logger.Logger
}

// NewClient creates a new HikerAPI client authenticated with apiKey
func NewClient(apiKey string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			AccessKeyHeader: apiKey,
			"Accept":        "application/json",
			"User-Agent":    config.DefaultUserAgent,
		},
		baseURL: BaseURL,
		logger:  log,
	}
}

// NewClientWithConfig creates a client from the hikerapi config section
func NewClientWithConfig(cfg *config.HikerAPIConfig, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	c := NewClient(cfg.APIKey, timeout, log)
	if cfg.BaseURL != "" {
		c.SetBaseURL(cfg.BaseURL)
	}
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return c
}

// SetBaseURL points the client at a different HikerAPI host
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// BaseURL returns the host the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetHeaders sets multiple headers at once
func (c *Client) SetHeaders(headers map[string]string) {
	for key, value := range headers {
		c.headers[key] = value
	}
}

// doRequest performs an HTTP request with the configured headers
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &Error{
			Type:    ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
			Code:    0,
		}
	}

	logger.LogRequest(c.logger, req.Method, req.URL.String(), resp.StatusCode, duration)

	return resp, nil
}

// Get performs a GET request to the specified URL
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{
			Type:    ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
			Code:    0,
		}
	}

	return c.doRequest(req)
}

// GetJSON performs a GET request and decodes the JSON response
func (c *Client) GetJSON(url string, target interface{}) error {
	resp, err := c.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Type:    ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}

		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"status":       resp.StatusCode,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return &Error{
			Type:    ErrorTypeParsing,
			Message: fmt.Sprintf("failed to parse JSON: %v", err),
			Code:    resp.StatusCode,
		}
	}

	return nil
}

// checkResponseStatus maps non-2xx responses to typed errors.
// The API's "detail" message, when present, replaces the generic one.
func (c *Client) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errType ErrorType
	var message string
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		errType, message = ErrorTypeAuth, "access key rejected"
	case resp.StatusCode == http.StatusNotFound:
		errType, message = ErrorTypeNotFound, "resource not found"
	case resp.StatusCode == http.StatusTooManyRequests:
		errType, message = ErrorTypeRateLimit, "rate limit exceeded"
	case resp.StatusCode >= 500:
		errType, message = ErrorTypeServerError, "server error"
	default:
		errType, message = ErrorTypeUnknown, fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}

	if detail := readErrorDetail(resp.Body); detail != "" {
		message = detail
	}

	fields := map[string]interface{}{
		"status": resp.StatusCode,
		"url":    resp.Request.URL.String(),
		"detail": message,
	}
	if errType == ErrorTypeServerError || errType == ErrorTypeUnknown {
		c.logger.ErrorWithFields("HikerAPI error", fields)
	} else {
		c.logger.WarnWithFields("HikerAPI error", fields)
	}

	return &Error{
		Type:    errType,
		Message: message,
		Code:    resp.StatusCode,
	}
}

// readErrorDetail extracts the "detail" field of an error body, if any
func readErrorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil || body.Detail == nil {
		return ""
	}

	switch d := body.Detail.(type) {
	case string:
		return d
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// FetchProfileByHandle fetches the account object for handle
func (c *Client) FetchProfileByHandle(handle string) (*User, error) {
	url := GetUserByUsernameURL(c.baseURL, handle)

	c.logger.DebugWithFields("fetching user profile", map[string]interface{}{
		"handle": handle,
	})

	var user User
	if err := c.GetJSON(url, &user); err != nil {
		c.logger.ErrorWithFields("failed to fetch user profile", map[string]interface{}{
			"handle": handle,
			"error":  err.Error(),
		})
		return nil, err
	}

	if user.PK == "" {
		c.logger.WarnWithFields("profile response has no pk", map[string]interface{}{
			"handle": handle,
		})
		return nil, &Error{
			Type:    ErrorTypeNotFound,
			Message: fmt.Sprintf("user %q not found", handle),
			Code:    http.StatusOK,
		}
	}

	c.logger.DebugWithFields("successfully fetched user profile", map[string]interface{}{
		"handle":  handle,
		"user_id": user.PK.String(),
	})

	return &user, nil
}

// FetchRecentPosts fetches the first page of a user's media, newest first
func (c *Client) FetchRecentPosts(userID string) ([]Post, error) {
	if userID == "" {
		return nil, &Error{
			Type:    ErrorTypeUnknown,
			Message: "user id is required",
			Code:    0,
		}
	}

	url := GetUserMediasURL(c.baseURL, userID)

	c.logger.DebugWithFields("fetching user media", map[string]interface{}{
		"user_id": userID,
	})

	var response MediasResponse
	if err := c.GetJSON(url, &response); err != nil {
		c.logger.ErrorWithFields("failed to fetch user media", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	c.logger.DebugWithFields("successfully fetched user media", map[string]interface{}{
		"user_id": userID,
		"items":   len(response.Response.Items),
	})

	return response.Response.Items, nil
}
