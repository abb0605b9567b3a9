package term

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the construction-time knobs spec.md's constructor
// leaves implicit, loadable from YAML the same way the teacher loads
// cli/session_persistence.go's SessionYAML — struct tags, best-effort
// load with sensible defaults on a missing file.
type Config struct {
	Cols        int  `yaml:"cols"`
	Rows        int  `yaml:"rows"`
	TabInterval int  `yaml:"tab_interval"`
	Autowrap    bool `yaml:"autowrap"`
	Origin      bool `yaml:"origin"`
}

// DefaultConfig returns the conventional 80x24 screen with an 8-column
// tab interval and autowrap on, matching spec.md's Modes defaults.
func DefaultConfig() Config {
	return Config{
		Cols:        80,
		Rows:        24,
		TabInterval: DefaultTabInterval,
		Autowrap:    true,
	}
}

// LoadConfig reads a YAML config file at path. A missing file is not
// an error: DefaultConfig is returned unchanged, matching the teacher's
// own best-effort settings load (cli/settings.go's DefaultSettings
// fallback pattern).
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultConfig().Cols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultConfig().Rows
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
