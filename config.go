package calf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file
const (
	EnvLiteral = "CALF_LITERAL"
	EnvFormat  = "CALF_FORMAT"
	EnvColor   = "CALF_COLOR"
)

// Output formats for the ast command
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the calf configuration
type Config struct {
	Literal  LiteralType    `yaml:"literal" toml:"literal"`
	Format   string         `yaml:"format" toml:"format"`
	Color    string         `yaml:"color" toml:"color"`
	Markdown MarkdownConfig `yaml:"markdown" toml:"markdown"`
}

// MarkdownConfig controls which fenced code blocks are read from Markdown sources
type MarkdownConfig struct {
	// Languages are the info strings of the blocks holding calf code
	Languages []string `yaml:"languages" toml:"languages"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Literal: LiteralFloat,
		Format:  FormatText,
		Color:   ColorAuto,
		Markdown: MarkdownConfig{
			Languages: []string{"calf"},
		},
	}
}

// LoadConfig loads configuration from the specified file.
// YAML or TOML is chosen by the file extension. A missing file yields the defaults.
// Environment overrides are applied last, after .env has been loaded.
func LoadConfig(configPath string) (*Config, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		config, err = parseConfig(configPath, data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		applyDefaults(config)
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// parseConfig decodes data in strict mode so unknown keys are rejected
func parseConfig(configPath string, data []byte) (*Config, error) {
	var config Config

	switch detectFormat(configPath) {
	case "toml":
		meta, err := toml.Decode(string(data), &config)
		if err != nil {
			return nil, err
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, key := range undecoded {
				keys = append(keys, key.String())
			}
			return nil, fmt.Errorf("%w: unknown keys %s", ErrUnknownConfigKey, strings.Join(keys, ", "))
		}
	default:
		if err := yaml.UnmarshalWithOptions(data, &config, yaml.Strict()); err != nil {
			return nil, err
		}
	}

	return &config, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(configPath string) string {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// applyDefaults fills the settings a file left empty
func applyDefaults(config *Config) {
	defaults := DefaultConfig()

	if config.Literal == "" {
		config.Literal = defaults.Literal
	}

	if config.Format == "" {
		config.Format = defaults.Format
	}

	if config.Color == "" {
		config.Color = defaults.Color
	}

	if len(config.Markdown.Languages) == 0 {
		config.Markdown.Languages = defaults.Markdown.Languages
	}
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvLiteral); v != "" {
		config.Literal = LiteralType(strings.ToLower(v))
	}

	if v := os.Getenv(EnvFormat); v != "" {
		config.Format = strings.ToLower(v)
	}

	if v := os.Getenv(EnvColor); v != "" {
		config.Color = strings.ToLower(v)
	}
}

// Validate checks the configuration for unsupported values.
// The literal type is stored in its canonical lowercase form.
func (c *Config) Validate() error {
	literal, err := ParseLiteralType(string(c.Literal))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	c.Literal = literal

	switch c.Format {
	case FormatText, FormatTree, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: invalid format '%s': must be one of text, tree, yaml, json", ErrConfigValidation, c.Format)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: invalid color '%s': must be one of auto, always, never", ErrConfigValidation, c.Color)
	}

	for i, lang := range c.Markdown.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: markdown.languages[%d] is empty", ErrConfigValidation, i)
		}
	}

	return nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if fileExists(".env") {
		err := godotenv.Load(".env")
		if err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
