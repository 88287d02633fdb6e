// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "doi-collector/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ScopusConfig holds settings for the fetch stage.
type ScopusConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// APIKey is sent in the X-ELS-APIKey header.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key" validate:"required"`

	// Endpoint is the Scopus Search API URL.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`

	// View is the Scopus response detail level (STANDARD or COMPLETE).
	View string `json:"view" yaml:"view" mapstructure:"view" validate:"required,oneof=STANDARD COMPLETE"`
}

// CollectorConfig holds settings for the pagination stage.
type CollectorConfig struct {
	// Query is the Scopus search expression (e.g. `"software ecosystem"`).
	Query string `json:"query" yaml:"query" mapstructure:"query" validate:"required"`

	// PageSize is the number of entries requested per page (default 25).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size" validate:"min=1,max=200"`

	// MaxResults caps the offset pagination may reach (default 5000).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results" validate:"min=1"`

	// Delay is the pause between consecutive page requests (default 1s).
	Delay time.Duration `json:"delay" yaml:"delay" mapstructure:"delay" validate:"gte=0"`
}

// FilterConfig holds settings for the filter stage.
type FilterConfig struct {
	// Profile is an optional YAML file overriding the built-in venue
	// allow-list and research-method phrases.
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty" mapstructure:"profile"`

	// MinYear is the earliest accepted publication year (default 2000).
	MinYear int `json:"min_year" yaml:"min_year" mapstructure:"min_year" validate:"gte=0"`
}

// OutputConfig holds settings for the persist stage.
type OutputConfig struct {
	// Dir is the output directory, created if absent (default "doi_results").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir" validate:"required"`

	// File is the output filename inside Dir (default "scopus_dois.txt").
	File string `json:"file" yaml:"file" mapstructure:"file" validate:"required"`
}

// Config groups all stage configurations for a collection run.
type Config struct {
	Scopus    ScopusConfig    `json:"scopus" yaml:"scopus" mapstructure:"scopus"`
	Collector CollectorConfig `json:"collector" yaml:"collector" mapstructure:"collector"`
	Filter    FilterConfig    `json:"filter" yaml:"filter" mapstructure:"filter"`
	Output    OutputConfig    `json:"output" yaml:"output" mapstructure:"output"`
}
