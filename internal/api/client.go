package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrMalformedResponse marks a 2xx /check reply whose body is missing
// the status field.
var ErrMalformedResponse = errors.New("malformed check response")

const registrarSearch = "https://www.namecheap.com/domains/registration/results/"

// Client talks to the domain suggester API. The base URL is injected,
// never compiled in, so tests can point it at a fake server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *zap.Logger

	// BareAvailable is the availability assumed for candidates that
	// arrive as legacy bare strings with no explicit flag.
	BareAvailable bool
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		HTTP:          &http.Client{Timeout: timeout},
		Logger:        logger,
		BareAvailable: true,
	}
}

type checkPayload struct {
	InputText string `json:"input_text"`
}

// Check classifies the input as an available domain, an unavailable
// domain with alternatives, or keyword suggestions. Non-2xx statuses,
// undecodable bodies, and bodies without a status field are all errors;
// the caller's displayed state is its own concern.
func (c *Client) Check(ctx context.Context, input string) (*CheckResult, error) {
	body, err := json.Marshal(checkPayload{InputText: strings.TrimSpace(input)})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/check", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("check request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("check: unexpected status %s", resp.Status)
	}

	var out CheckResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("check: decode response: %w", err)
	}
	if out.Status == "" {
		return nil, ErrMalformedResponse
	}

	// Resolve both candidate wire shapes once, at the boundary.
	out.Alternatives = normalizeCandidates(out.Alternatives, c.BareAvailable)
	out.Results = normalizeCandidates(out.Results, c.BareAvailable)

	c.Logger.Info("check_done",
		zap.String("status", out.Status),
		zap.Int("alternatives", len(out.Alternatives)),
		zap.Int("results", len(out.Results)),
	)
	return &out, nil
}

type notifyPayload struct {
	Domain string `json:"domain"`
	Email  string `json:"email"`
}

// Subscribe registers an email to be notified when the domain becomes
// available. Returns the server's acknowledgement message.
func (c *Client) Subscribe(ctx context.Context, domain, email string) (string, error) {
	body, err := json.Marshal(notifyPayload{Domain: domain, Email: strings.TrimSpace(email)})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/notify", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("notify request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("notify: unexpected status %s", resp.Status)
	}

	var out struct {
		Message string `json:"message"`
	}
	// The message is optional; an empty body is still a success.
	_ = json.NewDecoder(resp.Body).Decode(&out)

	c.Logger.Info("subscribe_done", zap.String("domain", domain))
	return out.Message, nil
}

// RegistrarURL builds the external registrar search link for a domain.
func RegistrarURL(fqdn string) string {
	return registrarSearch + "?domain=" + url.QueryEscape(fqdn)
}
