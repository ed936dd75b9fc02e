// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// StoreConfig holds settings for the SQLite entry store.
type StoreConfig struct {
	// Dir is the base directory for the database and export files
	// (default "data").
	Dir string `json:"dir" yaml:"dir"`
}

// HistoryConfig holds settings for the session entry list.
type HistoryConfig struct {
	// Limit bounds how many entries the session keeps, newest first
	// (default 10). Zero keeps every entry.
	Limit int `json:"limit" yaml:"limit"`
}

// AdvisorConfig groups all configuration read from seal-advisor.yaml.
type AdvisorConfig struct {
	Store   StoreConfig   `json:"store" yaml:"store"`
	History HistoryConfig `json:"history" yaml:"history"`
}
