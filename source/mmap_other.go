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

//go:build !linux

package source

import "os"

// Mmap falls back to reading the whole file into memory on platforms
// without the unix mmap syscalls wired up. The Source contract is
// identical; only the backing storage differs.
type Mmap struct {
	Bytes
}

// OpenMmap reads the named file into memory and returns a Source over
// its contents.
func OpenMmap(name string) (*Mmap, error) {
	return OpenMmapCapacity(name, DefaultCaptureCapacity)
}

// OpenMmapCapacity is OpenMmap with an explicit capture capacity.
func OpenMmapCapacity(name string, capacity int) (*Mmap, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return &Mmap{Bytes: *NewBytesCapacity(data, capacity)}, nil
}

// Close is a no-op on this fallback; the data is ordinary heap memory.
func (m *Mmap) Close() error { return nil }
