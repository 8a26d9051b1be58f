package youtube

import (
	"io/fs"
	"sync"

	"github.com/go-drift/ytplayer/pkg/errors"
	"github.com/go-drift/ytplayer/pkg/platform"
)

// ErrDisposed indicates the controller's web surface has been released.
var ErrDisposed = platform.ErrDisposed

// PlayerController embeds a YouTube player in a native web view and
// provides playback control. The underlying platform view is created
// eagerly, so methods and callbacks work immediately after construction.
//
// Set configuration fields (Vars, Width, Height, BaseURL) and callback
// fields before the first Load call to ensure no events are missed.
// Callbacks are optional, replaceable, and not owned by the controller;
// notification is a no-op while a callback is absent.
//
// All methods are safe for concurrent use, but the component is designed
// for the single UI execution context that owns the rendering surface.
type PlayerController struct {
	mu      sync.RWMutex
	web     *platform.WebViewController // guarded by mu
	state   PlayerState                 // guarded by mu
	quality PlaybackQuality             // guarded by mu

	// apiReady records the page's one-time API-ready announcement. It is
	// never reset for the lifetime of the controller, even across page
	// reloads.
	apiReady bool // guarded by mu

	// Vars is passed through verbatim to the iframe API as playerVars.
	// It is an open-ended mapping validated by nobody; keys and values
	// follow https://developers.google.com/youtube/player_parameters.
	Vars map[string]any

	// Width and Height size the embedded player. Defaults are "100%".
	Width, Height string

	// BaseURL resolves relative references in the player page.
	// Defaults to "about:blank".
	BaseURL string

	// Templates overrides the bundled player page, mainly for tests.
	// The filesystem must contain assets/player.html.
	Templates fs.FS

	// OnReady is called when the embedded player becomes ready.
	// Called on the UI thread.
	OnReady func()

	// OnStateChanged is called when the playback state changes.
	// Called on the UI thread.
	OnStateChanged func(PlayerState)

	// OnQualityChanged is called when the playback quality changes.
	// Called on the UI thread.
	OnQualityChanged func(PlaybackQuality)
}

// NewPlayerController creates a new player controller backed by a native
// web view.
func NewPlayerController() *PlayerController {
	c := &PlayerController{}
	web := platform.NewWebViewController()
	web.DecideNavigation = c.decideNavigation
	c.web = web
	return c
}

// ViewID returns the platform view ID of the underlying web surface, or 0
// if the view was not created.
func (c *PlayerController) ViewID() int64 {
	c.mu.RLock()
	web := c.web
	c.mu.RUnlock()
	if web == nil {
		return 0
	}
	return web.ViewID()
}

// State returns the last playback state reported by the embedded page.
func (c *PlayerController) State() PlayerState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Quality returns the last playback quality reported by the embedded page.
func (c *PlayerController) Quality() PlaybackQuality {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quality
}

// Ready reports whether the page has announced the iframe API ready.
// Once true it stays true for the lifetime of the controller.
func (c *PlayerController) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiReady
}

// LoadVideoID loads the player page cued to a single video.
// This triggers a full page load of the web surface.
func (c *PlayerController) LoadVideoID(videoID string) error {
	return c.loadPlayer(map[string]any{"videoId": videoID})
}

// LoadVideoURL extracts the video ID from a YouTube link and loads it.
// Returns ErrNoVideoID when the URL does not identify a video.
func (c *PlayerController) LoadVideoURL(rawURL string) error {
	videoID, ok := ExtractVideoID(rawURL)
	if !ok {
		return ErrNoVideoID
	}
	return c.LoadVideoID(videoID)
}

// LoadPlaylistID loads the player page cued to a playlist.
func (c *PlayerController) LoadPlaylistID(playlistID string) error {
	return c.loadPlayer(map[string]any{
		"listType": "playlist",
		"list":     playlistID,
	})
}

// Play starts or resumes playback.
func (c *PlayerController) Play() error {
	return c.exec(command("play"))
}

// Pause pauses playback.
func (c *PlayerController) Pause() error {
	return c.exec(command("pause"))
}

// Stop stops playback.
func (c *PlayerController) Stop() error {
	return c.exec(command("stop"))
}

// Clear clears the current video.
func (c *PlayerController) Clear() error {
	return c.exec(command("clear"))
}

// Mute mutes playback audio.
func (c *PlayerController) Mute() error {
	return c.exec(command("mute"))
}

// UnMute restores playback audio.
func (c *PlayerController) UnMute() error {
	return c.exec(command("unMute"))
}

// SeekTo seeks to the given position in seconds. seekAhead controls
// whether the player may request unbuffered data from the server.
func (c *PlayerController) SeekTo(seconds float64, seekAhead bool) error {
	return c.exec(command("seekTo", seconds, seekAhead))
}

// PreviousVideo skips to the previous video in the playlist.
func (c *PlayerController) PreviousVideo() error {
	return c.exec(command("previousVideo"))
}

// NextVideo skips to the next video in the playlist.
func (c *PlayerController) NextVideo() error {
	return c.exec(command("nextVideo"))
}

// Duration queries the video duration in seconds. The completion is
// invoked asynchronously on the UI thread; ok is false when the page
// produced no value.
func (c *PlayerController) Duration(complete func(seconds float64, ok bool)) error {
	return c.query(command("getDuration"), complete)
}

// CurrentTime queries the current playback position in seconds. The
// completion is invoked asynchronously on the UI thread; ok is false when
// the page produced no value.
//
// When queries overlap, results are matched in the order the web surface
// completes evaluations, which is not guaranteed to match call order.
func (c *PlayerController) CurrentTime(complete func(seconds float64, ok bool)) error {
	return c.query(command("getCurrentTime"), complete)
}

// Dispose releases the web surface and its native resources. After
// disposal, this controller must not be reused. Dispose is idempotent.
func (c *PlayerController) Dispose() {
	c.mu.Lock()
	web := c.web
	c.web = nil
	c.mu.Unlock()
	if web != nil {
		web.Dispose()
	}
}

// exec submits a fire-and-forget control command. Commands issued before
// the page has loaded no-op or fail at the web-engine layer; that is
// accepted behavior and surfaces only as a diagnostic.
func (c *PlayerController) exec(script string) error {
	c.mu.RLock()
	web := c.web
	c.mu.RUnlock()
	if web == nil {
		return ErrDisposed
	}
	return web.EvaluateJavaScript(script, func(result any, err error) {
		c.reportScriptError(script, err)
	})
}

// query submits a command expecting a numeric result.
func (c *PlayerController) query(script string, complete func(seconds float64, ok bool)) error {
	c.mu.RLock()
	web := c.web
	c.mu.RUnlock()
	if web == nil {
		return ErrDisposed
	}
	return web.EvaluateJavaScript(script, func(result any, err error) {
		if err != nil {
			c.reportScriptError(script, err)
			if complete != nil {
				complete(0, false)
			}
			return
		}
		seconds, ok := asFloat64(result)
		if complete != nil {
			complete(seconds, ok)
		}
	})
}

// reportScriptError logs an evaluation failure. The void-return error
// code means the script ran but produced no value; it is swallowed.
// Nothing is ever propagated upward.
func (c *PlayerController) reportScriptError(script string, err error) {
	if err == nil || err == ErrDisposed || isVoidResultError(err) {
		return
	}
	errors.Report(&errors.PlayerError{
		Op:   "youtube.evaluate " + script,
		Kind: errors.KindScript,
		Err:  err,
	})
}

// isVoidResultError reports whether err is the web engine's benign
// "script returned no result" error.
func isVoidResultError(err error) bool {
	ce, ok := err.(*platform.ChannelError)
	return ok && ce.Code == platform.ErrCodeScriptResultUnsupported
}

// asFloat64 coerces a script result to a float64.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
