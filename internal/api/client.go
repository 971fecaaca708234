// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeService
	ErrTypeInvalidResponse
)

// ClientError represents an error from the recommendation service client.
type ClientError struct {
	Type       ErrorType
	Message    string
	StatusCode int    // Set for ErrTypeService
	Body       string // Raw response body for ErrTypeService, for diagnostics
	Cause      error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "recommendation service is unreachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

// IsUnreachable reports whether err indicates the service could not be reached.
func IsUnreachable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeConnection
	}
	return errors.Is(err, ErrUnreachable)
}

// IsServiceError reports whether err is a non-2xx response from the service,
// returning the status code when it is.
func IsServiceError(err error) (int, bool) {
	var clientErr *ClientError
	if errors.As(err, &clientErr) && clientErr.Type == ErrTypeService {
		return clientErr.StatusCode, true
	}
	return 0, false
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the service client.
type ClientConfig struct {
	// BaseURL is the recommendation service base URL (default: http://localhost:8000)
	BaseURL string

	// Timeout for requests (default: 30s). There is no per-operation
	// override; every user action is a single attempt against this budget.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the recommendation service.
// It is safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	cfg, err := client.Recommend(ctx, "PC para gaming, 2500 soles", "")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new service client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new service client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// SetBaseURL updates the base URL (used by config hot-reload).
func (c *Client) SetBaseURL(baseURL string) {
	if baseURL != "" {
		c.config.BaseURL = baseURL
	}
}

// =============================================================================
// RECOMMENDATION OPERATIONS
// =============================================================================

// Recommend sends free text to POST /recommend and returns the generated
// configuration. modelType selects a specific service model; pass "" to let
// the service pick its default, in which case the model_type key is not
// transmitted at all.
func (c *Client) Recommend(ctx context.Context, message, modelType string) (*Configuration, error) {
	reqBody := RecommendRequest{Message: message, ModelType: modelType}

	var result Configuration
	if err := c.postJSON(ctx, "/recommend", reqBody, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CompareModels sends free text to POST /compare-models. The response shape
// is service-defined, so it is returned as raw JSON for display or logging.
func (c *Client) CompareModels(ctx context.Context, message string) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.postJSON(ctx, "/compare-models", CompareRequest{Message: message}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// RecommendByProfile lists the top recommendations of one component type for
// a stored usage profile.
func (c *Client) RecommendByProfile(ctx context.Context, profileID, componentType, modelType string, topK int) ([]ProfileRecommendation, error) {
	query := url.Values{}
	if modelType != "" {
		query.Set("model_type", modelType)
	}
	if topK > 0 {
		query.Set("top_k", strconv.Itoa(topK))
	}

	path := "/recommend/" + url.PathEscape(profileID) + "/" + url.PathEscape(componentType)
	var result []ProfileRecommendation
	if err := c.getJSON(ctx, path, query, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// =============================================================================
// PROFILE OPERATIONS
// =============================================================================

// ListProfiles retrieves all usage profiles from GET /profiles.
func (c *Client) ListProfiles(ctx context.Context) ([]Profile, error) {
	var result []Profile
	if err := c.getJSON(ctx, "/profiles", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetProfile retrieves a single usage profile.
func (c *Client) GetProfile(ctx context.Context, profileID string) (*Profile, error) {
	var result Profile
	if err := c.getJSON(ctx, "/profiles/"+url.PathEscape(profileID), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// CATALOG OPERATIONS
// =============================================================================

// ListComponents retrieves catalog components from GET /components, bounded
// by filter.Limit. Zero-valued filter fields are omitted from the query; a
// MaxPrice of 0 means "no price filter", never "free parts only".
func (c *Client) ListComponents(ctx context.Context, filter ComponentFilter) ([]CatalogComponent, error) {
	query := url.Values{}
	if filter.Type != "" {
		query.Set("component_type", filter.Type)
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	var result ListComponentsResponse
	if err := c.getJSON(ctx, "/components", query, &result); err != nil {
		return nil, err
	}
	return result.Components, nil
}

// ListComponentTypes retrieves the set of catalog component types.
func (c *Client) ListComponentTypes(ctx context.Context) ([]string, error) {
	var result ListTypesResponse
	if err := c.getJSON(ctx, "/components/types", nil, &result); err != nil {
		return nil, err
	}
	return result.Types, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateConfiguration asks the service to check a component selection via
// POST /validate. The verdict is the service's; the client never validates
// compatibility locally.
func (c *Client) ValidateConfiguration(ctx context.Context, components ComponentList) (*CompatibilityReport, error) {
	var result CompatibilityReport
	if err := c.postJSON(ctx, "/validate", ValidateRequest{Components: components}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckHealth verifies that the service is reachable via GET /health.
func (c *Client) CheckHealth(ctx context.Context) error {
	var result json.RawMessage
	return c.getJSON(ctx, "/health", nil, &result)
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// postJSON issues a single POST with a JSON body and decodes the response
// into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// getJSON issues a single GET with optional query parameters and decodes the
// response into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return ErrTimeout
		}
		return &ClientError{Type: ErrTypeConnection, Message: "recommendation service is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Capture the body for diagnostics; the detail field when present
		// makes the log line readable.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		message := fmt.Sprintf("%s %s failed: %s", req.Method, req.URL.Path, resp.Status)
		var svcErr serviceError
		if json.Unmarshal(raw, &svcErr) == nil && svcErr.Detail != "" {
			message += ": " + svcErr.Detail
		}
		return &ClientError{
			Type:       ErrTypeService,
			Message:    message,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}
