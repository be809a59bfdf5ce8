// AngelaMos | 2026
// client.go

// Package video finds a single relevant YouTube video for a search query
// via the YouTube Data API.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against baseURL, or the public YouTube Data
// API when baseURL is empty.
func NewClient(apiKey string, timeout time.Duration, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type searchPayload struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// FirstVideoURL searches for the query and returns the watch URL of the
// top result. The fallback strings are user-facing; diagnosis responses
// embed them verbatim instead of failing the whole request.
func (c *Client) FirstVideoURL(ctx context.Context, query string) string {
	params := url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"video"},
		"maxResults": {"1"},
		"key":        {c.apiKey},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/search?"+params.Encode(),
		nil,
	)
	if err != nil {
		return fmt.Sprintf("Error fetching video: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("Error fetching video: %v", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf(
			"Error fetching video: youtube api status %d", resp.StatusCode)
	}

	var payload searchPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Sprintf("Error fetching video: %v", err)
	}

	if len(payload.Items) == 0 || payload.Items[0].ID.VideoID == "" {
		return "No relevant video found."
	}

	return "https://www.youtube.com/watch?v=" + payload.Items[0].ID.VideoID
}
