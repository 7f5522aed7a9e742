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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsCaptureCapacity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "definition.yaml")
	if err := os.WriteFile(path, []byte("rawStrings: true\nsource: bytes\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.RawStrings {
		t.Fatal("RawStrings not parsed")
	}
	if cfg.CaptureCapacity != 1024 {
		t.Fatalf("got default capacity %d, want 1024", cfg.CaptureCapacity)
	}
}

func TestLoadExplicitCapacity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "definition.yaml")
	body := "captureCapacity: 64\nsource: mmap\npath: /tmp/does-not-matter.json\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CaptureCapacity != 64 {
		t.Fatalf("got capacity %d, want 64", cfg.CaptureCapacity)
	}
	if cfg.Source != SourceMmap {
		t.Fatalf("got source %q, want mmap", cfg.Source)
	}
}

func TestOpenMmapRejectsWrongKind(t *testing.T) {
	cfg := &Config{Source: SourceBytes}
	if _, err := cfg.OpenMmap(); err == nil {
		t.Fatal("expected error opening mmap source from a bytes-kind config")
	}
}
