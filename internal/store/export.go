// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seal-advisor/pkg/types"
)

// ExportPath returns where an export in the given format ("yaml" or
// "json") is written.
func (s *Store) ExportPath(format string) string {
	return filepath.Join(s.dir, indexDir, "export."+format)
}

// ExportYAML writes the matching entries to dir/index/export.yaml and
// returns the path.
func (s *Store) ExportYAML(ctx context.Context, opts ListOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := s.ExportPath("yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the matching entries to dir/index/export.json and
// returns the path.
func (s *Store) ExportJSON(ctx context.Context, opts ListOptions) (string, error) {
	entries, err := s.exportEntries(ctx, opts)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := s.ExportPath("json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) exportEntries(ctx context.Context, opts ListOptions) ([]types.RecommendationEntry, error) {
	entries, err := s.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []types.RecommendationEntry{}
	}
	return entries, nil
}
