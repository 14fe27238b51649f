// Package youtube is a thin client for the YouTube Data API v3 search
// endpoint. It keeps the API key on the server side.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"
	DefaultTimeout = 10 * time.Second
	maxResults     = "8"
	watchURL       = "https://www.youtube.com/watch?v="
)

var ErrMissingAPIKey = errors.New("missing YOUTUBE_API_KEY")

// UpstreamError is a non-2xx answer from the YouTube API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("YouTube API error: %d %s", e.Status, e.Body)
}

type Video struct {
	VideoID      string
	Title        string
	ChannelTitle string
	Thumbnail    string
	URL          string
}

type Client struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{APIKey: apiKey, BaseURL: strings.TrimRight(baseURL, "/"), Timeout: timeout}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to eight safe-search videos matching q.
func (c *Client) Search(ctx context.Context, q string) ([]Video, error) {
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []Video{}, nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", q)
	params.Set("type", "video")
	params.Set("maxResults", maxResults)
	params.Set("safeSearch", "strict")
	params.Set("key", c.APIKey)

	timeout := c.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent := fiber.Get(c.BaseURL + "/search?" + params.Encode())
	agent.Timeout(timeout)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("youtube search: %w", errors.Join(errs...))
	}
	if status < 200 || status > 299 {
		return nil, &UpstreamError{Status: status, Body: string(body)}
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode youtube response: %w", err)
	}

	out := make([]Video, 0, len(resp.Items))
	for _, it := range resp.Items {
		if it.ID.VideoID == "" || it.Snippet.Title == "" {
			continue
		}
		out = append(out, Video{
			VideoID:      it.ID.VideoID,
			Title:        it.Snippet.Title,
			ChannelTitle: it.Snippet.ChannelTitle,
			Thumbnail:    it.Snippet.Thumbnails.Default.URL,
			URL:          watchURL + it.ID.VideoID,
		})
	}
	return out, nil
}
