package youtube

import (
	"encoding/json"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

// minimalTemplate wraps the substitution site so tests can recover the
// embedded JSON verbatim.
var minimalTemplate = fstest.MapFS{
	"assets/player.html": &fstest.MapFile{
		Data: []byte("<html>" + configPlaceholder + "</html>"),
	},
}

// loadedPayload loads a video and returns the configuration object that
// was substituted into the page.
func loadedPayload(t *testing.T, c *PlayerController, bridge *fakeBridge, load func() error) map[string]any {
	t.Helper()
	c.Templates = minimalTemplate

	if err := load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	calls := bridge.viewCalls("loadHTML")
	if len(calls) != 1 {
		t.Fatalf("expected 1 loadHTML call, got %d", len(calls))
	}
	html, _ := calls[0].args["html"].(string)

	if strings.Contains(html, configPlaceholder) {
		t.Fatalf("placeholder not substituted: %q", html)
	}
	if strings.Count(html, `"events"`) != 1 {
		t.Fatalf("expected exactly one filled substitution site: %q", html)
	}

	embedded := strings.TrimSuffix(strings.TrimPrefix(html, "<html>"), "</html>")
	var payload map[string]any
	if err := json.Unmarshal([]byte(embedded), &payload); err != nil {
		t.Fatalf("embedded configuration is not valid JSON: %v\n%s", err, embedded)
	}
	return payload
}

func TestLoadVideoIDPayload(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	c.Vars = map[string]any{"playsinline": 1, "controls": 0}

	payload := loadedPayload(t, c, bridge, func() error {
		return c.LoadVideoID("dQw4w9WgXcQ")
	})

	want := map[string]any{
		"width":   "100%",
		"height":  "100%",
		"videoId": "dQw4w9WgXcQ",
		"events": map[string]any{
			"onReady":                 "onReady",
			"onStateChange":           "onStateChange",
			"onPlaybackQualityChange": "onPlaybackQualityChange",
			"onPlaybackRateChange":    "onPlaybackRateChange",
			"onError":                 "onError",
			"onApiChange":             "onApiChange",
		},
		"playerVars": map[string]any{
			"playsinline": float64(1),
			"controls":    float64(0),
		},
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPlaylistIDPayload(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	payload := loadedPayload(t, c, bridge, func() error {
		return c.LoadPlaylistID("PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs")
	})

	if payload["listType"] != "playlist" {
		t.Errorf("listType: got %v, want playlist", payload["listType"])
	}
	if payload["list"] != "PL590L5WQmH8fJ54F369BLDSqIwcs-TCfs" {
		t.Errorf("list: got %v", payload["list"])
	}
	if _, present := payload["videoId"]; present {
		t.Error("playlist load must not carry a videoId")
	}
}

func TestLoadVideoURLPayload(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	payload := loadedPayload(t, c, bridge, func() error {
		return c.LoadVideoURL("https://youtu.be/M7lc1UVf-VE")
	})

	if payload["videoId"] != "M7lc1UVf-VE" {
		t.Errorf("videoId: got %v, want M7lc1UVf-VE", payload["videoId"])
	}
}

func TestLoadUsesConfiguredDimensionsAndBaseURL(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	c.Templates = minimalTemplate
	c.Width = "640"
	c.Height = "360"
	c.BaseURL = "https://example.com/"

	if err := c.LoadVideoID("abc"); err != nil {
		t.Fatalf("LoadVideoID: %v", err)
	}

	calls := bridge.viewCalls("loadHTML")
	if len(calls) != 1 {
		t.Fatalf("expected 1 loadHTML call, got %d", len(calls))
	}
	if got := calls[0].args["baseUrl"]; got != "https://example.com/" {
		t.Errorf("baseUrl: got %v", got)
	}

	html, _ := calls[0].args["html"].(string)
	if !strings.Contains(html, `"width":"640"`) || !strings.Contains(html, `"height":"360"`) {
		t.Errorf("dimensions not serialized: %q", html)
	}
}

func TestLoadDefaultBaseURL(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()
	c.Templates = minimalTemplate

	if err := c.LoadVideoID("abc"); err != nil {
		t.Fatalf("LoadVideoID: %v", err)
	}

	calls := bridge.viewCalls("loadHTML")
	if got := calls[0].args["baseUrl"]; got != "about:blank" {
		t.Errorf("baseUrl: got %v, want about:blank", got)
	}
}

func TestLoadAbortsOnMissingTemplate(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	c.Templates = fstest.MapFS{} // no player.html

	if err := c.LoadVideoID("abc"); err == nil {
		t.Fatal("expected an error for a missing template")
	}
	if calls := bridge.viewCalls("loadHTML"); len(calls) != 0 {
		t.Errorf("no page must be loaded on resource failure, got %d loads", len(calls))
	}
	if c.Ready() {
		t.Error("component must stay not-ready after an aborted load")
	}
}

func TestLoadAbortsOnUnserializableConfiguration(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	c.Templates = minimalTemplate
	c.Vars = map[string]any{"bad": make(chan int)}

	if err := c.LoadVideoID("abc"); err == nil {
		t.Fatal("expected an error for an unserializable configuration")
	}
	if calls := bridge.viewCalls("loadHTML"); len(calls) != 0 {
		t.Errorf("no page must be loaded on serialization failure, got %d loads", len(calls))
	}
}

func TestBundledTemplateHasOneSubstitutionSite(t *testing.T) {
	data, err := defaultTemplates.ReadFile(templatePath)
	if err != nil {
		t.Fatalf("bundled template missing: %v", err)
	}
	if got := strings.Count(string(data), configPlaceholder); got != 1 {
		t.Errorf("bundled template has %d substitution sites, want 1", got)
	}
}

func TestBundledTemplateLoad(t *testing.T) {
	c, bridge := setupPlayer(t)
	defer c.Dispose()

	if err := c.LoadVideoID("abc"); err != nil {
		t.Fatalf("LoadVideoID with bundled template: %v", err)
	}
	calls := bridge.viewCalls("loadHTML")
	if len(calls) != 1 {
		t.Fatalf("expected 1 loadHTML call, got %d", len(calls))
	}
	html, _ := calls[0].args["html"].(string)
	if strings.Contains(html, configPlaceholder) {
		t.Error("placeholder survived substitution")
	}
	if !strings.Contains(html, `"videoId":"abc"`) {
		t.Errorf("serialized configuration not found in page")
	}
}
