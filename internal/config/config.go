// Package config loads boring-docs settings from .boring-docs.yaml in the
// project root, BORING_DOCS_* environment variables and an optional .env
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file.
const FileName = ".boring-docs.yaml"

// EnvPrefix prefixes environment overrides, e.g. BORING_DOCS_OUTPUT_DIR.
const EnvPrefix = "BORING_DOCS"

// Config holds all settings for a run.
type Config struct {
	// OutputDir is relative to the project root.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// HomePage is the index page file name inside OutputDir.
	HomePage string `mapstructure:"home_page" yaml:"home_page"`
	// Ignore adds doublestar globs to the built-in ignore list.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`
	// Workers bounds parallel file parsing; 0 means GOMAXPROCS.
	Workers int           `mapstructure:"workers" yaml:"workers"`
	Project ProjectConfig `mapstructure:"project" yaml:"project"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Parse   ParseConfig   `mapstructure:"parse" yaml:"parse"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

// ProjectConfig overrides what the manifest says.
type ProjectConfig struct {
	Name        string `mapstructure:"name" yaml:"name,omitempty"`
	Description string `mapstructure:"description" yaml:"description,omitempty"`
}

// RenderConfig tunes page output.
type RenderConfig struct {
	ShowReturns bool `mapstructure:"show_returns" yaml:"show_returns"`
}

// ParseConfig tunes annotation parsing.
type ParseConfig struct {
	// DocTypeFallback uses @param/:type types when the signature has none.
	DocTypeFallback bool `mapstructure:"doc_type_fallback" yaml:"doc_type_fallback"`
}

// LogConfig selects level ("debug", "info", "warn", "error") and format
// ("console" or "json").
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir: "docs",
		HomePage:  "home.md",
		Ignore:    []string{},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("home_page", d.HomePage)
	v.SetDefault("ignore", d.Ignore)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("project.name", d.Project.Name)
	v.SetDefault("project.description", d.Project.Description)
	v.SetDefault("render.show_returns", d.Render.ShowReturns)
	v.SetDefault("parse.doc_type_fallback", d.Parse.DocTypeFallback)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads configuration for the project at root. When path is set it must
// exist; otherwise root/.boring-docs.yaml is used if present.
func Load(root, path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail mid-run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("config: output_dir must not be empty")
	}
	if filepath.IsAbs(c.OutputDir) {
		return fmt.Errorf("config: output_dir %q must be relative to the project root", c.OutputDir)
	}
	if c.HomePage == "" || strings.ContainsAny(c.HomePage, `/\`) {
		return fmt.Errorf("config: home_page %q must be a plain file name", c.HomePage)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Log.Format)
	}
	return nil
}

// SaveToFile writes c as YAML unless path already exists. It reports
// whether the file was created.
func (c *Config) SaveToFile(path string) (bool, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return false, fmt.Errorf("config: marshal: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return false, fmt.Errorf("config: write %s: %w", path, err)
	}
	return true, nil
}

// LoadDotEnv loads dir/.env into the process environment when it exists.
// Variables already set win.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}
