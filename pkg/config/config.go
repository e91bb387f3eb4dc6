// Package config loads and persists the project-level instancectl
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rdmlab/instancectl/pkg/logger"
	"github.com/rdmlab/instancectl/pkg/version"
)

// DefaultFile is the config filename searched in the project directory.
const DefaultFile = "instancectl.yaml"

// defaultSymlinks are the project files and folders linked into the
// instance when none are configured.
var defaultSymlinks = []string{"app.cfg", "templates", "app_data"}

// Config holds the project settings for a local application instance.
type Config struct {
	ProjectDir      string   `yaml:"project_dir"`
	InstancePath    string   `yaml:"instance_path"`
	PlatformVersion string   `yaml:"platform_version"`
	Symlinks        []string `yaml:"symlinks"`
	AssetsCommand   []string `yaml:"assets_command"`

	path string
}

// Load reads a config file and applies defaults for unset fields.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{path: path}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.ProjectDir == "" {
		abs, err := filepath.Abs(filepath.Dir(path))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve project dir: %w", err)
		}
		cfg.ProjectDir = abs
	}
	if len(cfg.Symlinks) == 0 {
		cfg.Symlinks = append([]string(nil), defaultSymlinks...)
	}

	logger.Debug("loaded config from %s (platform %s)\n", path, cfg.PlatformVersion)
	return cfg, nil
}

// Save writes the config back to the file it was loaded from.
func (c *Config) Save() error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", c.path, err)
	}
	return nil
}

// UpdateInstancePath records a new instance path and persists it.
func (c *Config) UpdateInstancePath(path string) error {
	c.InstancePath = path
	return c.Save()
}

// PlatformMajor returns the major component of the configured platform
// version. It keys the node/npm requirement tiers.
func (c *Config) PlatformMajor() (int, error) {
	v, err := version.Extract(c.PlatformVersion)
	if err != nil {
		return 0, fmt.Errorf("invalid platform_version %q: %w", c.PlatformVersion, err)
	}
	return v.Major, nil
}
