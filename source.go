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

package tinyjson

// Source is the byte source adapter a Cursor is built on. It provides a
// one-byte lookahead cursor over a pull stream, plus a bounded capture
// buffer that the lexer sub-machines accumulate lexeme bytes into.
//
// Implementations live in the source subpackage. A Source is borrowed by
// a Cursor for the Cursor's lifetime; the Cursor reads from it but never
// closes it.
type Source interface {
	// EnsureStarted primes the cursor by reading one byte, if that has
	// not already happened. Idempotent.
	EnsureStarted()

	// Current returns the byte under the cursor. Its value is undefined
	// once EOF returns true.
	Current() byte

	// Advance moves the cursor forward one byte. It returns false if
	// doing so moved the cursor past the end of the stream.
	Advance() bool

	// More reports whether there is a byte under the cursor.
	More() bool

	// EOF reports whether the stream is exhausted.
	EOF() bool

	// Capture appends b to the capture buffer. It is a silent no-op if
	// the buffer is already at capacity; callers that need to guarantee
	// room (e.g. the chunking guard in Cursor.Read) must check
	// CaptureSize against CaptureCapacity themselves before calling.
	Capture(b byte)

	// ClearCapture empties the capture buffer without changing its
	// capacity.
	ClearCapture()

	// CaptureSize returns the number of bytes currently captured.
	CaptureSize() int

	// CaptureCapacity returns the fixed capacity of the capture buffer.
	CaptureCapacity() int

	// CaptureBuffer returns the captured bytes. The returned slice is
	// only valid until the next ClearCapture or Capture call; callers
	// that need the bytes to outlive that must copy them.
	CaptureBuffer() []byte
}
