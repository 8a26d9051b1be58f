package youtube

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoVideoID indicates a URL that does not identify a YouTube video.
var ErrNoVideoID = errors.New("youtube: no video ID in URL")

// ExtractVideoID extracts the video identifier from a YouTube link.
// Three forms are recognized, in priority order:
//
//  1. short links (https://youtu.be/<id>): the first path segment;
//  2. embed links (.../embed/<id>): the final path segment;
//  3. watch links (...?v=<id>): the raw v query parameter.
//
// It returns false when none of the forms match.
func ExtractVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := pathSegments(u.Path)

	if strings.HasSuffix(u.Hostname(), "youtu.be") && len(segments) > 0 {
		return segments[0], true
	}

	for _, segment := range segments[:max(len(segments)-1, 0)] {
		if segment == "embed" {
			return segments[len(segments)-1], true
		}
	}

	if v, ok := rawQueryValue(u.RawQuery, "v"); ok {
		return v, true
	}

	return "", false
}

// pathSegments splits a URL path into its non-empty segments.
func pathSegments(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}
