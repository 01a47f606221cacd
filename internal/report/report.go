// Package report posts finished match results to an HTTP backend. The
// core simulation never touches it; entrypoints wire it to the engine's
// result callback.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Match is the payload persisted for one finished match.
type Match struct {
	Player1         string  `json:"player_1"`
	Player2         string  `json:"player_2"`
	Player1Score    int     `json:"player_1_score"`
	Player2Score    int     `json:"player_2_score"`
	Winner          string  `json:"winner"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Client posts match results to a backend base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// defaultTimeout bounds a result post; a slow backend must never stall
// session teardown.
const defaultTimeout = 5 * time.Second

// NewClient creates a client for the given backend base URL,
// e.g. "http://backend:8000/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
	}
}

// PostMatch sends one finished match to the backend.
func (c *Client) PostMatch(ctx context.Context, m Match) error {
	body, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode match: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/matches/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("post match: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("post match: backend returned %s", resp.Status)
	}
	return nil
}
