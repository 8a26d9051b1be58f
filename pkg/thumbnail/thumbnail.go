// Package thumbnail builds and fetches YouTube video thumbnails for use
// in native UI around the embedded player.
package thumbnail

import (
	"context"
	"fmt"
	"image"
	"net/http"

	"golang.org/x/image/draw"

	_ "image/jpeg" // thumbnails are served as JPEG
	_ "image/png"

	_ "golang.org/x/image/webp" // and increasingly as WebP
)

// Quality selects a thumbnail size tier on the image CDN.
type Quality int

const (
	// QualityDefault is the 120x90 tier.
	QualityDefault Quality = iota

	// QualityMedium is the 320x180 tier.
	QualityMedium

	// QualityHigh is the 480x360 tier.
	QualityHigh

	// QualityStandard is the 640x480 tier.
	QualityStandard

	// QualityMax is the highest resolution available for the video.
	QualityMax
)

// name returns the CDN file name for the tier.
func (q Quality) name() string {
	switch q {
	case QualityMedium:
		return "mqdefault"
	case QualityHigh:
		return "hqdefault"
	case QualityStandard:
		return "sddefault"
	case QualityMax:
		return "maxresdefault"
	default:
		return "default"
	}
}

// URL returns the thumbnail URL for a video at the given quality tier.
func URL(videoID string, q Quality) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/%s.jpg", videoID, q.name())
}

// Fetch downloads and decodes the thumbnail for a video. A nil client
// falls back to http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, videoID string, q Quality) (image.Image, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL(videoID, q), nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("thumbnail: unexpected status code: %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: decode: %w", err)
	}
	return img, nil
}

// Scale resizes a thumbnail to the given dimensions in pixels, e.g. to
// match the player view's frame.
func Scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
