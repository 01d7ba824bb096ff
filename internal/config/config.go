package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mdconv/internal/fetch"
	"github.com/vvka-141/mdconv/internal/format"
	"github.com/vvka-141/mdconv/pkg/mdconv"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables that override the config file.
const (
	EnvFetchTimeout = "MDCONV_FETCH_TIMEOUT"
	EnvFetchRetries = "MDCONV_FETCH_RETRIES"
	EnvUserAgent    = "MDCONV_USER_AGENT"
)

type FetchConfig struct {
	Timeout   string            `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	RateLimit float64           `yaml:"rate_limit"`
	RateBurst int               `yaml:"rate_burst"`
	Retries   *int              `yaml:"retries"`
	Headers   map[string]string `yaml:"headers,omitempty"`
}

type FormatConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Type        string `yaml:"type"`
	Extension   string `yaml:"extension,omitempty"`
	MimeType    string `yaml:"mimetype,omitempty"`
	Description string `yaml:"description,omitempty"`
	XSDURL      string `yaml:"xsd_url,omitempty"`
	Namespace   string `yaml:"namespace,omitempty"`
	Replace     bool   `yaml:"replace,omitempty"`
}

type ProjectConfig struct {
	Fetch   FetchConfig    `yaml:"fetch"`
	Formats []FormatConfig `yaml:"formats"`
}

const ConfigFileName = "mdconv.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", mdconv.ErrInvalidConfig, configPath, err)
	}
	return &cfg, nil
}

// Duration parses Timeout. Empty means mdconv.DefaultFetchTimeout.
func (c FetchConfig) Duration() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return mdconv.DefaultFetchTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: fetch timeout %q must be a positive duration such as 30s", mdconv.ErrInvalidConfig, c.Timeout)
	}
	return d, nil
}

// RetryCount returns the configured retries, or mdconv.DefaultRetryMaxAttempts.
func (c FetchConfig) RetryCount() int {
	if c.Retries == nil {
		return mdconv.DefaultRetryMaxAttempts
	}
	return *c.Retries
}

// FetcherConfig converts the section to an HTTP fetcher configuration.
func (c FetchConfig) FetcherConfig() (fetch.Config, error) {
	timeout, err := c.Duration()
	if err != nil {
		return fetch.Config{}, err
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		return fetch.Config{}, fmt.Errorf("%w: rate_limit and rate_burst must not be negative", mdconv.ErrInvalidConfig)
	}

	cfg := fetch.DefaultConfig()
	cfg.Timeout = timeout
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	if c.RateLimit > 0 {
		cfg.RateLimit = c.RateLimit
	}
	if c.RateBurst > 0 {
		cfg.RateBurst = c.RateBurst
	}
	cfg.Headers = c.Headers
	return cfg, nil
}

// ApplyEnv overrides fetch settings from the environment. lookup is usually
// os.LookupEnv.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvFetchTimeout); ok && v != "" {
		c.Fetch.Timeout = v
		if _, err := c.Fetch.Duration(); err != nil {
			return fmt.Errorf("%s: %w", EnvFetchTimeout, err)
		}
	}
	if v, ok := lookup(EnvFetchRetries); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer, got %q", mdconv.ErrInvalidConfig, EnvFetchRetries, v)
		}
		c.Fetch.Retries = &n
	}
	if v, ok := lookup(EnvUserAgent); ok && v != "" {
		c.Fetch.UserAgent = v
	}
	return nil
}

// Descriptor builds the format descriptor for the entry. Entries with an
// xsd_url become XML schema descriptors.
func (f FormatConfig) Descriptor() (*format.Descriptor, error) {
	if f.XSDURL != "" {
		if f.Type != "" && !strings.EqualFold(f.Type, format.TypeXML.Value()) {
			return nil, fmt.Errorf("%w: format %s: xsd_url requires type xml, got %q", mdconv.ErrInvalidConfig, f.Name, f.Type)
		}
		return format.NewXML(f.Name, f.Version, f.XSDURL, f.Namespace, f.Description)
	}

	t := format.TypeOther
	if f.Type != "" {
		parsed, err := format.ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: format %s: %v", mdconv.ErrInvalidConfig, f.Name, err)
		}
		t = parsed
	}
	return format.New(f.Name, f.Version,
		format.WithType(t),
		format.WithExtension(f.Extension),
		format.WithMimeType(f.MimeType),
		format.WithDescription(f.Description))
}

// Descriptors builds every configured descriptor in file order.
func (c *ProjectConfig) Descriptors() ([]*format.Descriptor, error) {
	out := make([]*format.Descriptor, 0, len(c.Formats))
	for i, fc := range c.Formats {
		d, err := fc.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("formats[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Populate registers every configured format in file order, honouring the
// per-entry replace flag.
func (c *ProjectConfig) Populate(reg *format.Registry) error {
	descriptors, err := c.Descriptors()
	if err != nil {
		return err
	}
	for i, d := range descriptors {
		add := reg.Add
		if c.Formats[i].Replace {
			add = reg.Replace
		}
		if err := add(d); err != nil {
			return fmt.Errorf("formats[%d]: %w", i, err)
		}
	}
	return nil
}
