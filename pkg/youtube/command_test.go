package youtube

import "testing"

func TestCommandText(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"no args", command("play"), "player.play();"},
		{"pause", command("pause"), "player.pause();"},
		{"mute", command("mute"), "player.mute();"},
		{"unMute", command("unMute"), "player.unMute();"},
		{"seekTo", command("seekTo", 12.5, true), "player.seekTo(12.5, true);"},
		{"seekTo whole seconds", command("seekTo", 30.0, false), "player.seekTo(30, false);"},
		{"query", command("getDuration"), "player.getDuration();"},
		{"int arg", command("seekTo", 7, true), "player.seekTo(7, true);"},
		{"string arg quoted", command("cueVideoById", "abc123"), `player.cueVideoById("abc123");`},
	}
	for _, tt := range tests {
		if tt.script != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.script, tt.want)
		}
	}
}

func TestFormatArgBool(t *testing.T) {
	if got := formatArg(false); got != "false" {
		t.Errorf("formatArg(false) = %q", got)
	}
}

func TestFormatArgFloatPrecision(t *testing.T) {
	// Shortest representation, not fixed decimals.
	if got := formatArg(0.1); got != "0.1" {
		t.Errorf("formatArg(0.1) = %q", got)
	}
	if got := formatArg(100.0); got != "100" {
		t.Errorf("formatArg(100.0) = %q", got)
	}
}
