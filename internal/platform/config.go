package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jotter-app/jotter/pkg/core"
)

// DefaultConfigFile is the config file name looked up in the working
// directory when none is specified.
const DefaultConfigFile = "jotter.yaml"

// Config is the on-disk configuration shape (jotter.yaml).
type Config struct {
	EventBuffer int         `yaml:"event_buffer"`
	Seed        []core.Note `yaml:"seed"`
	UI          UIConfig    `yaml:"ui"`
}

// UIConfig holds view-layer preferences.
type UIConfig struct {
	Theme string `yaml:"theme"` // "dark" (default) or "light"
}

// LoadConfig reads and parses the config file at path.
// A missing file yields a zero Config and no error; config is optional.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
