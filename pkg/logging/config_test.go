package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"garbage", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConfigureNilUsesDefaults(t *testing.T) {
	prev := *Default()
	defer SetDefault(prev)

	Configure(nil)

	if Default().GetLevel() != zerolog.InfoLevel {
		t.Errorf("default level = %v, want info", Default().GetLevel())
	}
}

func TestConfigureLevel(t *testing.T) {
	prev := *Default()
	defer SetDefault(prev)

	Configure(&Config{Level: "warn", Format: "json", Output: "discard"})

	if Default().GetLevel() != zerolog.WarnLevel {
		t.Errorf("configured level = %v, want warn", Default().GetLevel())
	}
}
