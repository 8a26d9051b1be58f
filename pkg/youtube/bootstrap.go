package youtube

import (
	"embed"
	"encoding/json"
	"io/fs"
	"strings"

	"github.com/go-drift/ytplayer/pkg/errors"
)

//go:embed assets/player.html
var defaultTemplates embed.FS

const (
	// templatePath locates the bundled player page.
	templatePath = "assets/player.html"

	// configPlaceholder is the single substitution site in the template.
	// The substitution is non-recursive: configuration values must not
	// contain the placeholder token or the output document is corrupted.
	configPlaceholder = "__PLAYER_CONFIG__"

	// defaultBaseURL resolves relative references in the loaded document.
	defaultBaseURL = "about:blank"

	// defaultDimension sizes the player to fill its container.
	defaultDimension = "100%"
)

// Event callback names the page binds to the iframe API. The page wires
// each to a notification on the reserved scheme; the bridge only decodes
// the subset it acts on and ignores the rest.
var eventBindings = map[string]string{
	"onReady":                 "onReady",
	"onStateChange":           "onStateChange",
	"onPlaybackQualityChange": "onPlaybackQualityChange",
	"onPlaybackRateChange":    "onPlaybackRateChange",
	"onError":                 "onError",
	"onApiChange":             "onApiChange",
}

// buildPayload assembles the configuration object serialized into the
// page: dimensions, event bindings, the caller's playerVars passthrough,
// and the load-specific keys (videoId, or listType and list).
func (c *PlayerController) buildPayload(load map[string]any) map[string]any {
	width := c.Width
	if width == "" {
		width = defaultDimension
	}
	height := c.Height
	if height == "" {
		height = defaultDimension
	}
	vars := c.Vars
	if vars == nil {
		vars = map[string]any{}
	}

	payload := map[string]any{
		"width":      width,
		"height":     height,
		"events":     eventBindings,
		"playerVars": vars,
	}
	for k, v := range load {
		payload[k] = v
	}
	return payload
}

// loadPlayer serializes the configuration, substitutes it into the page
// template, and loads the result into the web surface. Resource and
// serialization failures abort the load: nothing is loaded and the
// component stays not-ready.
func (c *PlayerController) loadPlayer(load map[string]any) error {
	data, err := json.Marshal(c.buildPayload(load))
	if err != nil {
		errors.Report(&errors.PlayerError{
			Op:   "youtube.loadPlayer",
			Kind: errors.KindSerialize,
			Err:  err,
		})
		return err
	}

	tmpl, err := fs.ReadFile(c.templates(), templatePath)
	if err != nil {
		errors.Report(&errors.PlayerError{
			Op:   "youtube.loadPlayer",
			Kind: errors.KindResource,
			Err:  err,
		})
		return err
	}

	html := strings.Replace(string(tmpl), configPlaceholder, string(data), 1)

	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	c.mu.RLock()
	web := c.web
	c.mu.RUnlock()
	if web == nil {
		return ErrDisposed
	}
	return web.LoadHTMLString(html, baseURL)
}

func (c *PlayerController) templates() fs.FS {
	if c.Templates != nil {
		return c.Templates
	}
	return defaultTemplates
}
