package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/winplace/internal/layout"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateBus(&c.Bus); err != nil {
		return fmt.Errorf("bus: %w", err)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.DispatchDelay < 0 {
		return fmt.Errorf("dispatchDelay cannot be negative")
	}
	if c.FallbackBarHeight < 0 {
		return fmt.Errorf("fallbackBarHeight cannot be negative")
	}

	// Sorted so the first reported error is stable
	keywords := make([]string, 0, len(c.Keywords))
	for kw := range c.Keywords {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	seen := make(map[string]string)
	for _, kw := range keywords {
		key := normalizeKeyword(kw)
		if key == "" {
			return fmt.Errorf("keyword bound to %q is empty", c.Keywords[kw])
		}
		if strings.ContainsAny(key, " \t") {
			return fmt.Errorf("keyword %q contains whitespace", kw)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("duplicate keyword: %q and %q", prev, kw)
		}
		seen[key] = kw

		if _, ok := layout.Lookup(c.Keywords[kw]); !ok {
			return fmt.Errorf("keyword %q references unknown action: %s", kw, c.Keywords[kw])
		}
	}

	return nil
}

func validateBus(b *BusConfig) error {
	if b.Destination == "" {
		return fmt.Errorf("missing destination")
	}
	if b.Interface == "" {
		return fmt.Errorf("missing interface")
	}
	if !strings.HasPrefix(b.ObjectPath, "/") {
		return fmt.Errorf("object path must start with '/': %q", b.ObjectPath)
	}
	return nil
}
