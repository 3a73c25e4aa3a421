package config

import (
	"time"

	"github.com/yourusername/winplace/internal/client"
)

// Config is the root configuration structure
type Config struct {
	Bus               BusConfig         `yaml:"bus" json:"bus"`
	Timeout           Duration          `yaml:"timeout" json:"timeout"`             // Per-call bus timeout
	DispatchDelay     Duration          `yaml:"dispatchDelay" json:"dispatchDelay"` // Delay before a scheduled action runs
	FallbackBarHeight int               `yaml:"fallbackBarHeight" json:"fallbackBarHeight"`
	Keywords          map[string]string `yaml:"keywords,omitempty" json:"keywords,omitempty"` // Keyword -> action name
}

// BusConfig names the window service on the session bus
type BusConfig struct {
	Destination string `yaml:"destination" json:"destination"`
	ObjectPath  string `yaml:"objectPath" json:"objectPath"`
	Interface   string `yaml:"interface" json:"interface"`
}

// Address converts the bus config to a client address
func (b BusConfig) Address() client.Address {
	return client.Address{
		Destination: b.Destination,
		ObjectPath:  b.ObjectPath,
		Interface:   b.Interface,
	}
}

// Duration is a time.Duration written as "5s", "50ms" in config files
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
