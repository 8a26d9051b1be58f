package youtube

import (
	"net/url"

	"github.com/go-drift/ytplayer/pkg/platform"
)

// EventScheme is the reserved URL scheme the embedded page uses to signal
// events. Navigations on this scheme are never real: they are cancelled
// and decoded instead.
const EventScheme = "ytplayer"

// Event names the page emits as the host component of a reserved-scheme
// navigation. Matching is case-sensitive; names outside this vocabulary
// are ignored entirely.
const (
	eventAPIReady      = "onYouTubeIframeAPIReady"
	eventReady         = "onReady"
	eventStateChange   = "onStateChange"
	eventQualityChange = "onPlaybackQualityChange"
)

// decideNavigation is the navigation-policy hook installed on the web
// surface. Reserved-scheme requests are cancelled and decoded as events;
// everything else passes through unmodified.
func (c *PlayerController) decideNavigation(rawURL string) platform.NavigationDecision {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme != EventScheme {
		return platform.NavigationAllow
	}

	data, _ := rawQueryValue(u.RawQuery, "data")
	c.handleEvent(u.Host, data)
	return platform.NavigationCancel
}

// handleEvent dispatches a decoded page event. Payloads that fail to parse
// into a known code are dropped silently: no state change, no callback,
// no log.
func (c *PlayerController) handleEvent(name, data string) {
	switch name {
	case eventAPIReady:
		// The iframe API is loaded; the player object itself is not ready
		// yet, so observers are not notified.
		c.mu.Lock()
		c.apiReady = true
		c.mu.Unlock()

	case eventReady:
		if c.OnReady != nil {
			c.OnReady()
		}

	case eventStateChange:
		state, ok := ParsePlayerState(data)
		if !ok {
			return
		}
		c.mu.Lock()
		c.state = state
		c.mu.Unlock()
		if c.OnStateChanged != nil {
			c.OnStateChanged(state)
		}

	case eventQualityChange:
		quality, ok := ParsePlaybackQuality(data)
		if !ok {
			return
		}
		c.mu.Lock()
		c.quality = quality
		c.mu.Unlock()
		if c.OnQualityChanged != nil {
			c.OnQualityChanged(quality)
		}
	}
}
