package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds runtime configuration for export and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Export parameters
	LegacyHalfFOV bool `json:"legacy_half_fov"`
	Indent        int  `json:"indent"`

	// Last used paths (GUI persistence)
	LastScenePath string `json:"last_scene_path"`
	LastExportDir string `json:"last_export_dir"`

	DarkMode bool `json:"dark_mode"`
}

const maxIndent = 8

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		LegacyHalfFOV: false,
		Indent:        4,
		LastScenePath: "",
		LastExportDir: "",
		DarkMode:      false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > maxIndent {
		c.Indent = 4
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "decode %s", path)
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
