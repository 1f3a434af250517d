package recaptcha

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"paygate-onboarding-gateway/internal/common/logger"
)

// Provider is the anti-abuse capability injected into the submission pipeline.
// Execute returns a single-use token scoped to an action name. The provider
// may be transiently unready, in which case submission must not be attempted.
type Provider interface {
	Ready() bool
	Execute(ctx context.Context, action string) (string, error)
}

// HTTPProvider obtains tokens from an external challenge service. It reports
// unready until its first successful health probe.
type HTTPProvider struct {
	serviceURL string
	httpClient *http.Client
	ready      atomic.Bool
}

func NewHTTPProvider(serviceURL string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		serviceURL: strings.TrimRight(serviceURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WarmUp probes the challenge service and flips the provider ready on success.
// Safe to call repeatedly; a failed probe leaves the provider unready.
func (p *HTTPProvider) WarmUp(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.serviceURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.ready.Store(false)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.ready.Store(false)
		return fmt.Errorf("challenge service health returned status %d", resp.StatusCode)
	}

	if !p.ready.Swap(true) {
		logger.Info().Str("service", p.serviceURL).Msg("challenge service ready")
	}
	return nil
}

func (p *HTTPProvider) Ready() bool {
	return p.ready.Load()
}

func (p *HTTPProvider) Execute(ctx context.Context, action string) (string, error) {
	body, err := json.Marshal(map[string]string{"action": action})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.serviceURL+"/execute", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.ready.Store(false)
		return "", fmt.Errorf("challenge service unavailable: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read challenge response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("challenge service returned status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("failed to parse challenge response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("challenge service returned an empty token")
	}

	return result.Token, nil
}

// StaticProvider returns a fixed token and is always ready. Used in
// development when no challenge service is configured.
type StaticProvider struct {
	Token string
}

func (p *StaticProvider) Ready() bool {
	return true
}

func (p *StaticProvider) Execute(ctx context.Context, action string) (string, error) {
	return p.Token, nil
}
