package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/winplace/internal/client"
	"github.com/yourusername/winplace/internal/layout"
	"github.com/yourusername/winplace/internal/x11"
)

const (
	DefaultConfigDir  = ".config/winplace"
	DefaultConfigFile = "config.yaml"

	DefaultDispatchDelay = 50 * time.Millisecond
)

// DefaultTemplate is written by `winplace config init`
const DefaultTemplate = `# winplace configuration

# Window service on the session bus (GNOME Shell "Window Calls" extension)
bus:
  destination: org.gnome.Shell
  objectPath: /org/gnome/Shell/Extensions/WindowCalls
  interface: org.gnome.Shell.Extensions.WindowCalls

# Timeout for each bus call
timeout: 5s

# Delay between selecting an action in the launcher and running it
dispatchDelay: 50ms

# Bar height used when the work area has to be derived from xrandr
fallbackBarHeight: 48

# Launcher keywords bound to actions
keywords:
  wh: left-half
  wl: right-half
  wm: maximize
  wc: center
`

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Bus: BusConfig{
			Destination: client.DefaultAddress.Destination,
			ObjectPath:  client.DefaultAddress.ObjectPath,
			Interface:   client.DefaultAddress.Interface,
		},
		Timeout:           Duration(client.DefaultTimeout),
		DispatchDelay:     Duration(DefaultDispatchDelay),
		FallbackBarHeight: x11.DefaultBarHeight,
		Keywords:          map[string]string{},
	}
}

// LoadConfig loads configuration from the specified path or default location.
// If path is empty, uses ~/.config/winplace/config.yaml (or config.json),
// and falls back to Default when neither exists.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadConfigFromBytes(data, ext)
}

// LoadConfigFromBytes loads configuration from raw bytes.
// format should be "yaml" or "json". Unset fields keep their defaults.
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// WriteDefault writes DefaultTemplate to path, refusing to overwrite unless force is set
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = GetConfigPath()
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	return os.WriteFile(path, []byte(DefaultTemplate), 0644)
}

// ResolveKeyword maps launcher input to an action name. A keyword binding
// wins over an action of the same name.
func (c *Config) ResolveKeyword(input string) (string, bool) {
	key := normalizeKeyword(input)
	if key == "" {
		return "", false
	}
	for kw, action := range c.Keywords {
		if normalizeKeyword(kw) == key {
			if a, ok := layout.Lookup(action); ok {
				return a.Name, true
			}
			return "", false
		}
	}
	if a, ok := layout.Lookup(key); ok {
		return a.Name, true
	}
	return "", false
}

// KeywordsFor returns the keywords bound to an action, sorted
func (c *Config) KeywordsFor(action string) []string {
	var out []string
	for kw, target := range c.Keywords {
		if a, ok := layout.Lookup(target); ok && a.Name == action {
			out = append(out, normalizeKeyword(kw))
		}
	}
	sort.Strings(out)
	return out
}
