// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads the handful of construction-time knobs a
// tinyjson.Cursor takes (capture capacity, raw-strings mode, input
// source kind) from a definition.yaml-style file, the same convention
// sneller's catalog definitions use.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/tinyjson/tinyjson/source"
)

// SourceKind names which Source constructor a Config's Source field
// should resolve to.
type SourceKind string

const (
	SourceBytes  SourceKind = "bytes"
	SourceReader SourceKind = "reader"
	SourceMmap   SourceKind = "mmap"
)

// Config is the set of construction-time parameters read from a
// definition.yaml file.
type Config struct {
	// CaptureCapacity bounds the lexer's capture buffer; it governs
	// both the field-name length limit and value_part chunk
	// granularity. Zero means source.DefaultCaptureCapacity.
	CaptureCapacity int `json:"captureCapacity"`

	// RawStrings, if true, disables escape decoding and quote
	// stripping: string values are captured byte-for-byte as they
	// appear in the source, backslashes and all.
	RawStrings bool `json:"rawStrings"`

	// Source selects which Source implementation the file describes.
	// Only "mmap" can be opened from a Config, through OpenMmap, and it
	// requires Path to be set.
	Source SourceKind `json:"source"`

	// Path is the file to open when Source is "mmap".
	Path string `json:"path"`
}

// Load reads and parses a definition.yaml (or .json; sigs.k8s.io/yaml
// accepts both) configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.CaptureCapacity == 0 {
		cfg.CaptureCapacity = source.DefaultCaptureCapacity
	}
	return &cfg, nil
}

// OpenMmap opens the configured mmap source. It is only valid to call
// when Source == SourceMmap.
func (c *Config) OpenMmap() (*source.Mmap, error) {
	if c.Source != SourceMmap {
		return nil, fmt.Errorf("config: Source is %q, not %q", c.Source, SourceMmap)
	}
	if c.Path == "" {
		return nil, fmt.Errorf("config: mmap source requires Path")
	}
	capacity := c.CaptureCapacity
	if capacity == 0 {
		capacity = source.DefaultCaptureCapacity
	}
	return source.OpenMmapCapacity(c.Path, capacity)
}
