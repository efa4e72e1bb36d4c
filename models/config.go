package models

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is where uploads go unless configured otherwise
const DefaultEndpoint = "http://34.16.121.9/astra/upload_pdf"

type Config struct {
	Endpoint      string        `json:"endpoint" yaml:"endpoint"`
	Email         string        `json:"email" yaml:"email"`
	StartDir      string        `json:"start_dir" yaml:"start_dir"`
	PDFOnlyPicker bool          `json:"pdf_only_picker" yaml:"pdf_only_picker"`
	ShowHidden    bool          `json:"show_hidden" yaml:"show_hidden"`
	LogFile       string        `json:"log_file" yaml:"log_file"`
	LogLevel      string        `json:"log_level" yaml:"log_level"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	Plain         bool          `json:"plain" yaml:"plain"`
}

var DefaultConfig = Config{
	Endpoint:      DefaultEndpoint,
	StartDir:      ".",
	PDFOnlyPicker: true,
	ShowHidden:    false,
	LogLevel:      "info",
	Timeout:       0, // transport default
	Plain:         false,
}

// Environment variables that override file configuration
const (
	EnvEndpoint = "PDF_UPLOAD_ENDPOINT"
	EnvEmail    = "PDF_UPLOAD_EMAIL"
	EnvStartDir = "PDF_UPLOAD_START_DIR"
	EnvLogFile  = "PDF_UPLOAD_LOG_FILE"
	EnvLogLevel = "PDF_UPLOAD_LOG_LEVEL"
	EnvTimeout  = "PDF_UPLOAD_TIMEOUT"
)

// LoadConfig layers defaults, an optional YAML file, an optional .env file
// and the process environment, in that order.
func LoadConfig(configFile, envFile string) (*Config, error) {
	cfg := DefaultConfig

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ConfigError{Field: "config_file", Message: err.Error()}
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set in the environment
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvEndpoint); ok {
		c.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvEmail); ok {
		c.Email = v
	}
	if v, ok := os.LookupEnv(EnvStartDir); ok {
		c.StartDir = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return &ConfigError{Field: "timeout", Message: err.Error()}
		}
		c.Timeout = d
	}
	return nil
}

// parseTimeout accepts Go durations ("30s") or a bare number of seconds
func parseTimeout(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return &ConfigError{Field: "endpoint", Message: "upload endpoint is required"}
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ConfigError{Field: "endpoint", Message: "must be an absolute http(s) URL"}
	}

	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "must not be negative"}
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultConfig.LogLevel
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &ConfigError{Field: "log_level", Message: err.Error()}
	}

	if c.StartDir == "" {
		c.StartDir = DefaultConfig.StartDir
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
