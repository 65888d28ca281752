// Package geo implements the Geocoder port against an external geocoding
// HTTP service.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mealorder/internal/core/domain/model/kernel"
)

// Client resolves free-text addresses via the geocoding service's REST API.
// An address the service does not know yields (nil, nil): unresolvable input
// is an expected dialog outcome, not a transport failure.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a geocoding client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type geocodeResponse struct {
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Zip       string  `json:"zip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ResolveAddress geocodes the given text.
func (c *Client) ResolveAddress(ctx context.Context, text string) (*kernel.Address, error) {
	endpoint := fmt.Sprintf("%s/geocode?q=%s", c.baseURL, url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(payload.Street, payload.City, payload.State, payload.Zip,
		payload.Latitude, payload.Longitude)
	if err != nil {
		return nil, err
	}

	return &address, nil
}
