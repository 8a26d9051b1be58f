package youtube

// PlayerState mirrors the playback state reported by the embedded page.
// It changes only when the page delivers a state-change event with a
// recognized code; unknown codes are dropped without effect.
type PlayerState int

const (
	// StateUnstarted indicates the player has not started playback.
	StateUnstarted PlayerState = iota

	// StateEnded indicates playback has reached the end of the video.
	StateEnded

	// StatePlaying indicates the player is actively playing.
	StatePlaying

	// StatePaused indicates the player is paused and can be resumed.
	StatePaused

	// StateBuffering indicates the player is buffering media data.
	StateBuffering

	// StateQueued indicates a video is cued and ready to play.
	StateQueued
)

// ParsePlayerState converts a wire code from the embedded page into a
// PlayerState. The iframe API transmits states as small numeric strings.
// Unknown codes return (StateUnstarted, false).
func ParsePlayerState(code string) (PlayerState, bool) {
	switch code {
	case "-1":
		return StateUnstarted, true
	case "0":
		return StateEnded, true
	case "1":
		return StatePlaying, true
	case "2":
		return StatePaused, true
	case "3":
		return StateBuffering, true
	case "5":
		return StateQueued, true
	default:
		return StateUnstarted, false
	}
}

// String returns a human-readable label for the player state.
func (s PlayerState) String() string {
	switch s {
	case StateUnstarted:
		return "Unstarted"
	case StateEnded:
		return "Ended"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateBuffering:
		return "Buffering"
	case StateQueued:
		return "Queued"
	default:
		return "Unknown"
	}
}

// PlaybackQuality mirrors the playback quality reported by the embedded
// page. It changes only on a recognized quality-change event.
type PlaybackQuality int

const (
	// QualitySmall is the lowest quality tier (240p).
	QualitySmall PlaybackQuality = iota

	// QualityMedium is the 360p tier.
	QualityMedium

	// QualityLarge is the 480p tier.
	QualityLarge

	// QualityHD720 is the 720p tier.
	QualityHD720

	// QualityHD1080 is the 1080p tier.
	QualityHD1080

	// QualityHighRes is anything above 1080p.
	QualityHighRes
)

// ParsePlaybackQuality converts a wire code from the embedded page into a
// PlaybackQuality. Unknown codes return (QualitySmall, false).
func ParsePlaybackQuality(code string) (PlaybackQuality, bool) {
	switch code {
	case "small":
		return QualitySmall, true
	case "medium":
		return QualityMedium, true
	case "large":
		return QualityLarge, true
	case "hd720":
		return QualityHD720, true
	case "hd1080":
		return QualityHD1080, true
	case "highres":
		return QualityHighRes, true
	default:
		return QualitySmall, false
	}
}

// String returns the wire code for the quality, which doubles as its
// human-readable label.
func (q PlaybackQuality) String() string {
	switch q {
	case QualitySmall:
		return "small"
	case QualityMedium:
		return "medium"
	case QualityLarge:
		return "large"
	case QualityHD720:
		return "hd720"
	case QualityHD1080:
		return "hd1080"
	case QualityHighRes:
		return "highres"
	default:
		return "unknown"
	}
}
