// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package geo looks up the country and city for a visitor address against
// an ip-api compatible endpoint. Lookups are best-effort decoration for
// the analytics log: every failure maps to an empty Location, never an
// error the caller has to handle.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Location is the resolved geography of one address.
type Location struct {
	Country string
	City    string
}

// Client queries an ip-api compatible JSON endpoint.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a geolocation client. An empty baseURL disables lookups;
// Lookup then always returns the zero Location.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
	}
}

type apiResponse struct {
	Status  string `json:"status"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// Lookup resolves one IP address. Private and loopback addresses are
// skipped without a request.
func (c *Client) Lookup(ctx context.Context, ip string) (Location, error) {
	if c.baseURL == "" || !publicAddress(ip) {
		return Location{}, nil
	}

	url := fmt.Sprintf("%s/json/%s?fields=status,country,city", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Location{}, fmt.Errorf("geo request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("geo http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Location{}, fmt.Errorf("geo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("geo API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result apiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return Location{}, fmt.Errorf("geo unmarshal: %w", err)
	}
	if result.Status != "success" {
		return Location{}, nil
	}
	return Location{Country: result.Country, City: result.City}, nil
}

func publicAddress(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return !parsed.IsLoopback() && !parsed.IsPrivate() && !parsed.IsUnspecified()
}
