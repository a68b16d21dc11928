package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

var errNoTunnels = errors.New("ngrok has no active tunnels")

// tunnelDetector polls the ngrok local API until a public URL shows up.
// ngrok usually starts alongside this service, so early misses are retried.
type tunnelDetector struct {
	apiBase  string
	attempts int
	interval time.Duration
	client   *http.Client
}

func newTunnelDetector(apiBase string) tunnelDetector {
	return tunnelDetector{
		apiBase:  apiBase,
		attempts: 10,
		interval: 3 * time.Second,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// detect returns the first HTTPS tunnel URL, or any tunnel when none is HTTPS.
func (d tunnelDetector) detect(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= d.attempts; attempt++ {
		url, err := d.lookup(ctx)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == d.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.interval):
		}
	}
	return "", fmt.Errorf("ngrok: no public URL after %d attempts: %w", d.attempts, lastErr)
}

func (d tunnelDetector) lookup(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.apiBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}
