// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads collection settings from flags, environment
// variables, a YAML config file, and the secrets directory, in that order
// of precedence, and validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/doi-collector/internal/collect"
	"github.com/pdiddy/doi-collector/internal/filter"
	"github.com/pdiddy/doi-collector/internal/persist"
	"github.com/pdiddy/doi-collector/internal/search"
	"github.com/pdiddy/doi-collector/internal/secrets"
	"github.com/pdiddy/doi-collector/pkg/types"
)

const (
	// EnvPrefix prefixes every environment variable, e.g.
	// DOI_COLLECTOR_COLLECTOR_PAGE_SIZE.
	EnvPrefix = "DOI_COLLECTOR"

	configName = "doi-collector"

	DefaultQuery     = `"software ecosystem"`
	DefaultTimeout   = 60 * time.Second
	DefaultDelay     = 1 * time.Second
	DefaultUserAgent = "doi-collector/0.1"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"api-key":     "scopus.api_key",
	"endpoint":    "scopus.endpoint",
	"view":        "scopus.view",
	"timeout":     "scopus.timeout",
	"query":       "collector.query",
	"page-size":   "collector.page_size",
	"max-results": "collector.max_results",
	"delay":       "collector.delay",
	"profile":     "filter.profile",
	"min-year":    "filter.min_year",
	"output-dir":  "output.dir",
	"output-file": "output.file",
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file path. When empty, Load looks
	// for doi-collector.yaml in the working directory and in
	// ~/.config/doi-collector/.
	ConfigFile string

	// Flags are bound over every other source. Only flags the user set
	// take precedence.
	Flags *pflag.FlagSet

	// Secrets supplies the API key when no other source sets it.
	Secrets secrets.Secrets
}

// Loaded is a validated configuration and the file it came from, if any.
type Loaded struct {
	Config   types.Config
	FileUsed string
}

// Load merges all configuration sources and validates the result.
func Load(opts Options) (*Loaded, error) {
	v, err := newViper(opts)
	if err != nil {
		return nil, err
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Scopus.APIKey == "" {
		cfg.Scopus.APIKey = opts.Secrets.Get(secrets.ScopusAPIKey)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return &Loaded{Config: cfg, FileUsed: v.ConfigFileUsed()}, nil
}

// LoadFilter resolves only the filter section from the same sources as
// Load. It needs no API key, so commands that only inspect the filter can
// run without credentials and still see the settings a collection would use.
func LoadFilter(opts Options) (types.FilterConfig, error) {
	v, err := newViper(opts)
	if err != nil {
		return types.FilterConfig{}, err
	}

	// Unmarshal walks every leaf key, so env and flag overrides apply.
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.FilterConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validateStruct(cfg.Filter, "Filter."); err != nil {
		return types.FilterConfig{}, err
	}
	return cfg.Filter, nil
}

// newViper builds a viper instance with defaults, env, bound flags, and
// the config file read in.
func newViper(opts Options) (*viper.Viper, error) {
	v := viper.New()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The bare Elsevier variable is accepted as well.
	_ = v.BindEnv("scopus.api_key", EnvPrefix+"_SCOPUS_API_KEY", "SCOPUS_API_KEY")

	setDefaults(v)

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scopus.api_key", "")
	v.SetDefault("scopus.endpoint", search.DefaultEndpoint)
	v.SetDefault("scopus.view", search.DefaultView)
	v.SetDefault("scopus.timeout", DefaultTimeout)
	v.SetDefault("scopus.user_agent", DefaultUserAgent)

	v.SetDefault("collector.query", DefaultQuery)
	v.SetDefault("collector.page_size", collect.DefaultPageSize)
	v.SetDefault("collector.max_results", collect.DefaultMaxResults)
	v.SetDefault("collector.delay", DefaultDelay)

	v.SetDefault("filter.profile", "")
	v.SetDefault("filter.min_year", filter.DefaultMinYear)

	v.SetDefault("output.dir", persist.DefaultDir)
	v.SetDefault("output.file", persist.DefaultFile)
}

// Validate checks cfg against its struct constraints and reports every
// failing field by its config key.
func Validate(cfg types.Config) error {
	return validateStruct(cfg, "")
}

// validateStruct validates s, prefixing each reported field key with
// prefix.
func validateStruct(s any, prefix string) error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s%s must satisfy %s", prefix, fieldKey(fe), rule))
	}
	return &Error{Problems: msgs}
}

// fieldKey turns a validator namespace like "Config.Scopus.APIKey" into
// "Scopus.APIKey".
func fieldKey(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// Error lists every invalid setting.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}
