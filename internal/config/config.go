package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SCRAPDF_LOG_LEVEL
const EnvPrefix = "SCRAPDF_"

// Config holds the CLI configuration
type Config struct {
	// Logging configuration
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=json console"`

	// TempDir is the parent of the OCR rendering directories; empty means
	// the system temporary directory
	TempDir string `yaml:"temp_dir"`

	// Backend selects the PDF parser; empty tries every backend
	Backend string `yaml:"backend" validate:"omitempty,oneof=ledongthuc dslipak"`

	// Renderer selects how scanned pages become images
	Renderer string `yaml:"renderer" validate:"oneof=pdfcpu fitz"`

	// DPI is the rasterization resolution, also reported to Tesseract
	DPI int `yaml:"dpi" validate:"gte=72,lte=1200"`

	// Languages are the Tesseract trained data to use, e.g. [eng, deu]
	Languages []string `yaml:"languages" validate:"dive,required"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Renderer:  "pdfcpu",
		DPI:       300,
		Languages: []string{"eng"},
	}
}

// Load reads the YAML file at path (if path is not empty), applies
// environment overrides and validates the result. Environment variables
// take precedence over file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		val, ok := lookup(EnvPrefix + key)
		return val, ok && val != ""
	}

	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("TEMP_DIR"); ok {
		c.TempDir = v
	}
	if v, ok := get("BACKEND"); ok {
		c.Backend = v
	}
	if v, ok := get("RENDERER"); ok {
		c.Renderer = v
	}
	if v, ok := get("DPI"); ok {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sDPI: %w", EnvPrefix, err)
		}
		c.DPI = dpi
	}
	if v, ok := get("LANGUAGES"); ok {
		c.Languages = strings.Split(v, ",")
	}
	return nil
}
