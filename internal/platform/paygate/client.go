package paygate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paygate-onboarding-gateway/internal/common/errors"
	"paygate-onboarding-gateway/internal/common/logger"
	authmodels "paygate-onboarding-gateway/internal/features/auth/models"
	netmodels "paygate-onboarding-gateway/internal/features/networks/models"
	regmodels "paygate-onboarding-gateway/internal/features/registration/models"
)

// MsgNoResponse is shown whenever the registration API cannot be reached at
// all. The exact wording is part of the UI contract.
const MsgNoResponse = "No response from server. Please check your connection."

// Client talks to the registration API. It performs no retries; the caller
// decides whether a failed call is worth repeating.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Register submits an assembled registration payload. The payload must already
// carry the anti-abuse token.
func (c *Client) Register(ctx context.Context, payload *regmodels.RegistrationPayload) (*regmodels.RegistrationResult, error) {
	var result regmodels.RegistrationResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/register/", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NetworkMappings fetches the full network/currency reference list.
func (c *Client) NetworkMappings(ctx context.Context) ([]netmodels.NetworkCurrencyMapping, error) {
	var mappings []netmodels.NetworkCurrencyMapping
	if err := c.do(ctx, http.MethodGet, "/api/v1/networks/mappings", nil, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// Health probes the upstream liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/v1/health", nil, &status)
}

// Signup forwards an account creation request.
func (c *Client) Signup(ctx context.Context, req *authmodels.SignupRequest) (*authmodels.AuthResponse, error) {
	var resp authmodels.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login forwards a login request.
func (c *Client) Login(ctx context.Context, req *authmodels.LoginRequest) (*authmodels.AuthResponse, error) {
	var resp authmodels.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "failed to encode request body")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("upstream request failed")
		return errors.Wrap(err, errors.ErrCodeUpstreamUnreachable, MsgNoResponse)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeUpstreamUnreachable, MsgNoResponse)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.New(errors.ErrCodeUpstreamRejected, extractDetail(data, resp.StatusCode)).
			WithDetail("status_code", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return errors.Wrap(err, errors.ErrCodeUpstreamRejected,
				fmt.Sprintf("unexpected response from server (status %d)", resp.StatusCode))
		}
	}

	return nil
}

// extractDetail flattens the upstream error body into one human-readable
// message. The body carries a `detail` field that is either a plain string or
// a list of {msg, type} objects; a list is joined with ", ".
func extractDetail(data []byte, statusCode int) string {
	var withString struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &withString); err == nil && withString.Detail != "" {
		return withString.Detail
	}

	var withList struct {
		Detail []struct {
			Msg  string `json:"msg"`
			Type string `json:"type"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(data, &withList); err == nil && len(withList.Detail) > 0 {
		msgs := make([]string, 0, len(withList.Detail))
		for _, d := range withList.Detail {
			msgs = append(msgs, d.Msg)
		}
		return strings.Join(msgs, ", ")
	}

	return fmt.Sprintf("Request failed with status %d", statusCode)
}
