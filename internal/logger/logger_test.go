package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerLevel(t *testing.T) {
	cases := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"", zerolog.InfoLevel},
		{"shouting", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		l := newLogger(&bytes.Buffer{}, tc.input)
		if l.GetLevel() != tc.want {
			t.Errorf("level %q: expected %s got %s", tc.input, tc.want, l.GetLevel())
		}
	}
}

func TestNewLoggerTagsInstance(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "info")
	l.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if id, _ := entry["instance"].(string); id == "" {
		t.Errorf("expected instance field, got %v", entry)
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message hello, got %v", entry["message"])
	}
}
