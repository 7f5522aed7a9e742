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

//go:build linux

package source

import (
	"os"

	"golang.org/x/sys/unix"
)

// Mmap is a Source over a memory-mapped file. It is the zero-copy,
// zero-heap-read path: the file's bytes are never read into a Go
// buffer, only the fixed-size capture buffer allocates. Intended for
// the capacity-constrained case where the input already lives on a
// block device and re-reading it into a buffer would be wasted work.
type Mmap struct {
	capture
	mem     []byte
	pos     int
	started bool
}

// OpenMmap memory-maps the named file read-only and returns a Source
// over its contents.
func OpenMmap(name string) (*Mmap, error) {
	return OpenMmapCapacity(name, DefaultCaptureCapacity)
}

// OpenMmapCapacity is OpenMmap with an explicit capture capacity.
func OpenMmapCapacity(name string, capacity int) (*Mmap, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size()
	if size == 0 {
		return &Mmap{capture: newCapture(capacity)}, nil
	}
	mem, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Mmap{capture: newCapture(capacity), mem: mem}, nil
}

// Close unmaps the underlying file region. It must be called exactly
// once the caller is done with the Source.
func (m *Mmap) Close() error {
	if m.mem == nil {
		return nil
	}
	mem := m.mem
	m.mem = nil
	return unix.Munmap(mem)
}

func (m *Mmap) EnsureStarted() { m.started = true }

func (m *Mmap) Current() byte {
	if m.pos >= len(m.mem) {
		return 0
	}
	return m.mem[m.pos]
}

func (m *Mmap) Advance() bool {
	if m.pos < len(m.mem) {
		m.pos++
	}
	return m.pos < len(m.mem)
}

func (m *Mmap) More() bool { return m.pos < len(m.mem) }

func (m *Mmap) EOF() bool { return m.pos >= len(m.mem) }
