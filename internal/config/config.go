package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/devsalary/internal/stats"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// ErrConfig marks every configuration problem so callers can tell it apart
// from network failures.
var ErrConfig = errors.New("configuration error")

const (
	DefaultConfigPath = "devsalary.yaml"
	DefaultEnvPath    = ".env"
	DefaultRolePrefix = "Программист"
	DefaultTimeout    = 30 * time.Second

	envSuperJobToken = "SUPERJOB_API_TOKEN"
	envCity          = "CITY"
	envLanguages     = "LANGUAGES"
	envRolePrefix    = "ROLE_PREFIX"
	envHHUserAgent   = "HH_USER_AGENT"
)

// Config is the resolved run configuration
type Config struct {
	Sources    []string
	City       City
	Languages  []string
	RolePrefix string
	Proxy      string
	Timeout    time.Duration
	HH         HHConfig
	SuperJob   SuperJobConfig
}

// HHConfig holds the hh.ru specific settings
type HHConfig struct {
	BaseURL           string  `yaml:"base_url"`
	PerPage           int     `yaml:"per_page"`
	ExactPages        bool    `yaml:"exact_pages"`
	UserAgent         string  `yaml:"user_agent"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// SuperJobConfig holds the SuperJob specific settings
type SuperJobConfig struct {
	BaseURL           string  `yaml:"base_url"`
	APIToken          string  `yaml:"api_token"`
	Count             int     `yaml:"count"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// fileConfig mirrors the YAML config file
type fileConfig struct {
	City       string         `yaml:"city"`
	Languages  []string       `yaml:"languages"`
	RolePrefix string         `yaml:"role_prefix"`
	Sources    []string       `yaml:"sources"`
	Proxy      string         `yaml:"proxy"`
	Timeout    time.Duration  `yaml:"timeout"`
	HH         HHConfig       `yaml:"hh"`
	SuperJob   SuperJobConfig `yaml:"superjob"`
}

// Overrides carries values given on the command line. Empty fields are ignored.
type Overrides struct {
	ConfigPath string
	EnvPath    string
	City       string
	Languages  string
	Source     string
	Proxy      string
	ExactPages bool
}

// Load resolves the configuration from, highest precedence first, the
// command line, the environment (after reading the .env file), the YAML
// config file and built-in defaults. Every failure wraps ErrConfig.
func Load(o Overrides) (*Config, error) {
	if err := loadEnvFile(o.EnvPath); err != nil {
		return nil, err
	}

	fc, err := loadFile(o.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Languages:  append([]string(nil), stats.DefaultLanguages...),
		RolePrefix: DefaultRolePrefix,
		Timeout:    DefaultTimeout,
		Sources:    utils.AllSources(),
		HH:         fc.HH,
		SuperJob:   fc.SuperJob,
	}

	cityName := DefaultCity

	// config file
	if fc.City != "" {
		cityName = fc.City
	}
	if len(fc.Languages) > 0 {
		cfg.Languages = fc.Languages
	}
	if fc.RolePrefix != "" {
		cfg.RolePrefix = fc.RolePrefix
	}
	if len(fc.Sources) > 0 {
		cfg.Sources = fc.Sources
	}
	if fc.Proxy != "" {
		cfg.Proxy = fc.Proxy
	}
	if fc.Timeout > 0 {
		cfg.Timeout = fc.Timeout
	}

	// environment
	if v := getEnv(envSuperJobToken); v != "" {
		cfg.SuperJob.APIToken = v
	}
	if v := getEnv(envCity); v != "" {
		cityName = v
	}
	if v := getEnv(envLanguages); v != "" {
		cfg.Languages = utils.ParseList(v)
	}
	if v := getEnv(envRolePrefix); v != "" {
		cfg.RolePrefix = v
	}
	if v := getEnv(envHHUserAgent); v != "" {
		cfg.HH.UserAgent = v
	}

	// command line
	if o.City != "" {
		cityName = o.City
	}
	if o.Languages != "" {
		cfg.Languages = utils.ParseList(o.Languages)
	}
	if o.Source != "" {
		cfg.Sources = []string{o.Source}
	}
	if o.Proxy != "" {
		cfg.Proxy = o.Proxy
	}
	if o.ExactPages {
		cfg.HH.ExactPages = true
	}

	cfg.City, err = ResolveCity(cityName)
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesSource reports whether the canonical source id is selected
func (c *Config) UsesSource(source string) bool {
	for _, s := range c.Sources {
		if s == source {
			return true
		}
	}
	return false
}

func (c *Config) validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("%w: no languages to query", ErrConfig)
	}

	seen := make(map[string]bool, len(c.Sources))
	sources := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		if !utils.IsValidSource(s) {
			return fmt.Errorf("%w: invalid source %q, must be one of: hh, superjob", ErrConfig, s)
		}
		canonical := utils.CanonicalSource(s)
		if !seen[canonical] {
			seen[canonical] = true
			sources = append(sources, canonical)
		}
	}
	if len(sources) == 0 {
		return fmt.Errorf("%w: no sources selected", ErrConfig)
	}
	c.Sources = sources

	if c.UsesSource(utils.SourceSuperJob) && c.SuperJob.APIToken == "" {
		return fmt.Errorf("%w: %s is not set", ErrConfig, envSuperJobToken)
	}
	return nil
}

// loadEnvFile reads KEY=VALUE pairs into the environment without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvPath
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}
	return nil
}

// loadFile parses the YAML config. The default path may be absent; an
// explicitly requested one may not.
func loadFile(path string) (fileConfig, error) {
	var fc fileConfig

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}
	return fc, nil
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
