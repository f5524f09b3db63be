package converter

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = ".razorconv.yaml"

// Config is the on-disk tool configuration.
type Config struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
	// Debug prints the expression tree next to each classification.
	Debug bool `yaml:"debug"`
	// Workers bounds batch concurrency; 0 means one per CPU.
	Workers int    `yaml:"workers"`
	Format  string `yaml:"format"`
	Color   string `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "razorconv",
		LogLevel: "info",
		Format:   "text",
		Color:    "auto",
	}
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q", c.Color)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	return nil
}

// LoadConfig reads the configuration at path on top of the defaults. A
// missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}
	config, err := parseConfigurationFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, err
	}
	return config, nil
}

// WriteConfig writes config as YAML to path, replacing any existing file.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
