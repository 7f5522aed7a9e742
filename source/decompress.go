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

package source

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewZstdSource wraps r in a zstd decompressor and returns a Reader
// source over the decompressed stream. The returned closer must be
// called once the caller is done reading to release the decoder's
// background goroutines.
func NewZstdSource(r io.Reader) (*Reader, io.Closer, error) {
	return NewZstdSourceCapacity(r, DefaultCaptureCapacity)
}

// NewZstdSourceCapacity is NewZstdSource with an explicit capture
// capacity.
func NewZstdSourceCapacity(r io.Reader, capacity int) (*Reader, io.Closer, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return NewReaderCapacity(dec, capacity), closerFunc(dec.Close), nil
}

// NewGzipSource wraps r in a gzip decompressor and returns a Reader
// source over the decompressed stream.
func NewGzipSource(r io.Reader) (*Reader, io.Closer, error) {
	return NewGzipSourceCapacity(r, DefaultCaptureCapacity)
}

// NewGzipSourceCapacity is NewGzipSource with an explicit capture
// capacity.
func NewGzipSourceCapacity(r io.Reader, capacity int) (*Reader, io.Closer, error) {
	dec, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return NewReaderCapacity(dec, capacity), dec, nil
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}
