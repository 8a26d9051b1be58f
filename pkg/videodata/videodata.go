// Package videodata resolves display metadata for a YouTube video, for
// native UI shown alongside the embedded player.
//
// Metadata comes from the public oEmbed endpoint. Videos that disallow
// embedding reject oEmbed requests, so those fall back to scraping the
// watch page.
package videodata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the video does not exist.
	ErrNotFound = errors.New("videodata: video not found")

	// ErrNotEmbeddable indicates the video owner disabled embedding.
	ErrNotEmbeddable = errors.New("videodata: video is not embeddable")
)

// Video is the display metadata for a single video.
type Video struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Client fetches video metadata. The zero value is ready to use.
type Client struct {
	// HTTP is the client used for requests. Nil means http.DefaultClient.
	HTTP *http.Client
}

// Lookup resolves metadata for a video ID. Non-embeddable videos are
// resolved through the watch page instead of oEmbed.
func (c *Client) Lookup(ctx context.Context, videoID string) (*Video, error) {
	v, err := c.fromOEmbed(ctx, videoID)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrNotEmbeddable) {
		return nil, err
	}
	return c.fromWatchPage(ctx, videoID)
}

func (c *Client) http() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) fromOEmbed(ctx context.Context, videoID string) (*Video, error) {
	url := "https://www.youtube.com/oembed?url=https://www.youtube.com/watch?v=" + videoID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, ErrNotFound
	case http.StatusUnauthorized:
		return nil, ErrNotEmbeddable
	default:
		return nil, fmt.Errorf("videodata: unexpected status code: %d", resp.StatusCode)
	}

	var v Video
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return nil, fmt.Errorf("videodata: decode oembed: %w", err)
	}
	return &v, nil
}

func (c *Client) fromWatchPage(ctx context.Context, videoID string) (*Video, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://youtu.be/"+videoID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	v, err := parseWatchPage(resp.Body)
	if err != nil {
		return nil, err
	}
	v.ThumbnailURL = fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID)
	return v, nil
}
