// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for commands that make network
// requests (currently only fetch).
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-explorer/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DatasetConfig locates the survey dataset.
type DatasetConfig struct {
	// Path is the local dataset file, JSON or YAML (default "data/papers.json").
	Path string `json:"path" yaml:"path"`

	// URL is the remote location used by the fetch command.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// ServeConfig holds settings for the web UI.
type ServeConfig struct {
	// Addr is the HTTP listen address (default ":7033").
	Addr string `json:"addr" yaml:"addr"`
}

// CatalogConfig holds settings for the sqlite full-text index.
type CatalogConfig struct {
	// DBPath is the index database file (default "data/catalog.db").
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for the fetch command.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxRetries is the number of retry attempts on rate-limited or
	// temporarily failing downloads (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExplorerConfig groups all tool configuration.
type ExplorerConfig struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`
	Serve   ServeConfig   `json:"serve" yaml:"serve"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch"`
}
