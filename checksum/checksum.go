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

// Package checksum hashes tinyjson scalar values as they stream past,
// without ever buffering a value larger than the cursor's own capture
// buffer.
package checksum

import (
	"golang.org/x/crypto/blake2b"

	"github.com/tinyjson/tinyjson"
)

// ChunkHasher accumulates a 32-byte blake2b XOF (BLAKE2Xb) digest,
// which differs from a plain BLAKE2b-256 sum, over a single scalar
// value's bytes, fed one capture-buffer's worth at a time. It exists
// because tinyjson.Cursor.Value is only valid until the next Read call:
// a caller that wants a checksum of a value too large to fit in one
// capture buffer (ValuePart/EndValuePart) cannot simply hold onto the
// slice and hash it at the end.
type ChunkHasher struct {
	h   blake2b.XOF
	sum [32]byte
}

// NewChunkHasher returns a ChunkHasher ready to absorb chunks.
func NewChunkHasher() *ChunkHasher {
	h, err := blake2b.NewXOF(32, nil)
	if err != nil {
		// blake2b.NewXOF only errors on an oversized key or output
		// size, neither of which applies to the fixed arguments above.
		panic(err)
	}
	return &ChunkHasher{h: h}
}

// Reset prepares the hasher to absorb a new value from scratch.
func (c *ChunkHasher) Reset() {
	c.h.Reset()
	c.sum = [32]byte{}
}

// Write absorbs the current capture buffer's bytes into the running
// digest. It never errors; blake2b.XOF.Write cannot fail.
func (c *ChunkHasher) Write(p []byte) {
	c.h.Write(p)
}

// Sum returns the 32-byte digest of everything written since the last
// Reset. It reads from a copy of the running state, so calling Sum does
// not prevent further Write calls, but those bytes will not be
// reflected in a digest already returned.
func (c *ChunkHasher) Sum() [32]byte {
	var out [32]byte
	c.h.Clone().Read(out[:])
	return out
}

// HashValue drives cur through a single value (which must be
// positioned so the next Read produces the first event of that value,
// i.e. cur.NodeType() is Field, Array's first element position, or
// similar) and returns its digest. It is a convenience wrapper around
// Write/Sum for callers that don't need incremental access to partial
// digests. Only scalar values are hashed: if the first event read is not
// Value, ValuePart or EndValuePart (an Object or Array, for instance),
// or Read reports a clean end of document, HashValue returns the digest
// of no bytes.
func HashValue(cur *tinyjson.Cursor) ([32]byte, error) {
	h := NewChunkHasher()
	for {
		if !cur.Read() {
			if cur.NodeType() == tinyjson.Error {
				return [32]byte{}, cur.Err().AsError()
			}
			break
		}
		switch cur.NodeType() {
		case tinyjson.Value, tinyjson.ValuePart, tinyjson.EndValuePart:
			h.Write(cur.Value())
			if cur.NodeType() == tinyjson.Value || cur.NodeType() == tinyjson.EndValuePart {
				return h.Sum(), nil
			}
		default:
			return h.Sum(), nil
		}
	}
	return h.Sum(), nil
}
