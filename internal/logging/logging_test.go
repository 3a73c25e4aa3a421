package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetOutput_FieldOrder(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	Info().Str("action", "left-half").Msg("dispatched")

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "dispatched" {
		t.Errorf("msg = %v, want dispatched", entry["msg"])
	}
	if entry["action"] != "left-half" {
		t.Errorf("action = %v, want left-half", entry["action"])
	}
	if strings.Index(line, `"ts"`) < strings.Index(line, `"action"`) {
		t.Errorf("ts should follow the event fields: %s", line)
	}
}

func TestSetDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output at info level: %q", buf.String())
	}

	SetDebug(true)
	defer SetDebug(false)
	Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing after SetDebug(true): %q", buf.String())
	}
}

func TestLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	want := filepath.Join(dir, "winplace", "winplace.log")
	if got := LogPath(); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}

	if err := Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer Close()

	Warn().Msg("written")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}
