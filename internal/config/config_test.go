package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/winplace/internal/client"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.Bus.Address() != client.DefaultAddress {
		t.Errorf("Bus.Address() = %+v, want %+v", cfg.Bus.Address(), client.DefaultAddress)
	}
	if cfg.Timeout.Std() != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.DispatchDelay.Std() != 50*time.Millisecond {
		t.Errorf("DispatchDelay = %v, want 50ms", cfg.DispatchDelay)
	}
	if cfg.FallbackBarHeight != 48 {
		t.Errorf("FallbackBarHeight = %d, want 48", cfg.FallbackBarHeight)
	}
}

func TestLoadConfigFromBytes_YAML(t *testing.T) {
	yamlConfig := `
timeout: 2s
dispatchDelay: 120ms
fallbackBarHeight: 32
keywords:
  wh: left-half
  WL: right
`
	cfg, err := LoadConfigFromBytes([]byte(yamlConfig), "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}

	if cfg.Timeout.Std() != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Timeout)
	}
	if cfg.DispatchDelay.Std() != 120*time.Millisecond {
		t.Errorf("DispatchDelay = %v, want 120ms", cfg.DispatchDelay)
	}
	if cfg.FallbackBarHeight != 32 {
		t.Errorf("FallbackBarHeight = %d, want 32", cfg.FallbackBarHeight)
	}
	// Unset sections keep their defaults
	if cfg.Bus.Address() != client.DefaultAddress {
		t.Errorf("Bus = %+v, want defaults", cfg.Bus)
	}
	if len(cfg.Keywords) != 2 {
		t.Errorf("len(Keywords) = %d, want 2", len(cfg.Keywords))
	}
}

func TestLoadConfigFromBytes_JSON(t *testing.T) {
	jsonConfig := `{
  "bus": {
    "destination": "org.example.Shell",
    "objectPath": "/org/example/Windows",
    "interface": "org.example.Windows"
  },
  "timeout": "750ms"
}`
	cfg, err := LoadConfigFromBytes([]byte(jsonConfig), "json")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes() error: %v", err)
	}
	if cfg.Bus.Destination != "org.example.Shell" {
		t.Errorf("Bus.Destination = %q, want %q", cfg.Bus.Destination, "org.example.Shell")
	}
	if cfg.Timeout.Std() != 750*time.Millisecond {
		t.Errorf("Timeout = %v, want 750ms", cfg.Timeout)
	}
	if cfg.DispatchDelay.Std() != DefaultDispatchDelay {
		t.Errorf("DispatchDelay = %v, want default", cfg.DispatchDelay)
	}
}

func TestLoadConfigFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format string
		errSub string
	}{
		{"unsupported format", "timeout: 1s", "toml", "unsupported config format"},
		{"bad yaml", "timeout: [1s", "yaml", "failed to parse YAML"},
		{"bad duration", "timeout: soon", "yaml", "invalid duration"},
		{"numeric json duration", `{"timeout": 5}`, "json", "failed to parse JSON"},
		{"negative delay", "dispatchDelay: -1s", "yaml", "dispatchDelay cannot be negative"},
		{"negative bar", "fallbackBarHeight: -4", "yaml", "fallbackBarHeight cannot be negative"},
		{"relative path", "bus:\n  destination: a\n  objectPath: x/y\n  interface: b", "yaml", "object path"},
		{"unknown action", "keywords:\n  zz: diagonal", "yaml", "unknown action"},
		{"empty keyword", "keywords:\n  \" \": maximize", "yaml", "is empty"},
		{"duplicate keyword", "keywords:\n  wm: maximize\n  WM: minimize", "yaml", "duplicate keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFromBytes([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatalf("LoadConfigFromBytes(%q) expected error, got nil", tt.data)
			}
			if !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.errSub)
			}
		})
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := WriteDefault(path, false); err != nil {
		t.Fatalf("WriteDefault() error: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got, _ := cfg.ResolveKeyword("wh"); got != "left-half" {
		t.Errorf("ResolveKeyword(wh) = %q, want left-half", got)
	}

	if err := WriteDefault(path, false); err == nil {
		t.Errorf("WriteDefault() over existing file expected error, got nil")
	}
	if err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(force) error: %v", err)
	}
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("LoadConfig() expected error for missing file, got nil")
	}
}

func TestLoadConfig_MissingDefaultUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.FallbackBarHeight != 48 {
		t.Errorf("FallbackBarHeight = %d, want 48", cfg.FallbackBarHeight)
	}
}

func TestResolveKeyword(t *testing.T) {
	cfg := Default()
	cfg.Keywords = map[string]string{
		"wh":     "left-half",
		"center": "maximize", // keyword shadows the action of the same name
		"up2":    "up",
	}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"wh", "left-half", true},
		{"  WH ", "left-half", true},
		{"center", "maximize", true},
		{"up2", "top-half", true},
		{"right-half", "right-half", true},
		{"down", "bottom-half", true},
		{"nope", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := cfg.ResolveKeyword(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ResolveKeyword(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeywordsFor(t *testing.T) {
	cfg := Default()
	cfg.Keywords = map[string]string{"wm": "maximize", "big": "maximize", "wh": "left"}

	got := cfg.KeywordsFor("maximize")
	if strings.Join(got, ",") != "big,wm" {
		t.Errorf("KeywordsFor(maximize) = %v, want [big wm]", got)
	}
	if got := cfg.KeywordsFor("left-half"); len(got) != 1 || got[0] != "wh" {
		t.Errorf("KeywordsFor(left-half) = %v, want [wh]", got)
	}
}

func TestDurationMarshal(t *testing.T) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		t.Fatalf("yaml.Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "timeout: 5s") {
		t.Errorf("marshalled config missing timeout: %s", data)
	}
	if !strings.Contains(string(data), "dispatchDelay: 50ms") {
		t.Errorf("marshalled config missing dispatchDelay: %s", data)
	}

	back, err := LoadConfigFromBytes(data, "yaml")
	if err != nil {
		t.Fatalf("LoadConfigFromBytes(marshalled) error: %v", err)
	}
	if back.Timeout != Default().Timeout {
		t.Errorf("round-tripped Timeout = %v, want %v", back.Timeout, Default().Timeout)
	}
}
