// Package client is a Go SDK for delivery partners integrating with the
// Wasul address registry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// DefaultBaseURL points at a locally running registry.
const DefaultBaseURL = "http://localhost:8000"

const apiKeyParam = "X-API-Key"

// ErrNotFound is returned when the registry has no matching address.
var ErrNotFound = errors.New("address not found")

// APIError carries a non-success registry response.
type APIError struct {
	StatusCode  int
	Detail      string
	AddressCode string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("wasul api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("wasul api error: status %d: %s", e.StatusCode, e.Detail)
}

// Address is the lookup view of a registered address.
type Address struct {
	AddressCode          string  `json:"address_code"`
	Phone                string  `json:"phone"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	POBox                *string `json:"po_box"`
	Area                 *string `json:"area"`
	City                 string  `json:"city"`
	DeliveryNotes        *string `json:"delivery_notes"`
	GoogleMapsLink       string  `json:"google_maps_link"`
	Verified             bool    `json:"verified"`
	SuccessfulDeliveries int     `json:"successful_deliveries"`
}

// Client talks to the registry on behalf of one partner.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for failed calls.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for baseURL authenticated with apiKey.
// An empty baseURL selects DefaultBaseURL.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse registry url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("registry url must be absolute")
	}

	c := &Client{
		baseURL:    parsed,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LookupByPhone fetches the address registered for phone.
func (c *Client) LookupByPhone(ctx context.Context, phone string) (*Address, error) {
	return c.lookup(ctx, url.Values{"phone": {phone}})
}

// LookupByCode fetches the address identified by code.
func (c *Client) LookupByCode(ctx context.Context, code string) (*Address, error) {
	return c.lookup(ctx, url.Values{"address_code": {code}})
}

func (c *Client) lookup(ctx context.Context, query url.Values) (*Address, error) {
	query.Set(apiKeyParam, c.apiKey)

	var address Address
	if err := c.do(ctx, http.MethodGet, "/api/lookup", query, nil, &address); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &address, nil
}

type verifyRequest struct {
	AddressCode string  `json:"address_code"`
	Success     bool    `json:"success"`
	Feedback    *string `json:"feedback"`
}

// VerifyDelivery reports a delivery outcome; empty feedback is sent as null.
func (c *Client) VerifyDelivery(ctx context.Context, code string, success bool, feedback string) error {
	body := verifyRequest{AddressCode: code, Success: success}
	if feedback != "" {
		body.Feedback = &feedback
	}
	return c.do(ctx, http.MethodPost, "/api/verify-delivery", url.Values{apiKeyParam: {c.apiKey}}, body, nil)
}

type keyRequest struct {
	PartnerName string `json:"partner_name"`
}

type keyResponse struct {
	APIKey string `json:"api_key"`
}

// RequestKey asks the registry for a new partner key. The client's own key
// is left unchanged.
func (c *Client) RequestKey(ctx context.Context, partnerName string) (string, error) {
	var resp keyResponse
	if err := c.do(ctx, http.MethodPost, "/api/request-key", nil, keyRequest{PartnerName: partnerName}, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

type errorBody struct {
	Detail      string `json:"detail"`
	AddressCode string `json:"address_code"`
}

func (c *Client) do(ctx context.Context, method, route string, query url.Values, in, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, route)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Detail = eb.Detail
			apiErr.AddressCode = eb.AddressCode
		}
		if resp.StatusCode != http.StatusNotFound {
			c.logger.Error("wasul request failed",
				slog.String("route", route),
				slog.Int("status", resp.StatusCode),
				slog.String("body", string(body)),
			)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
