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

// Package extract pulls the values at a fixed set of dotted field
// paths ("a.b.c") out of a document, without building a tree for the
// rest of it. Path segments are compared by siphash rather than by
// string equality so that matching against many candidate paths stays
// cheap as the document streams past.
package extract

import (
	"strings"

	"github.com/dchest/siphash"
	"golang.org/x/exp/slices"

	"github.com/tinyjson/tinyjson"
)

// Extractor matches a fixed set of dotted object-field paths against a
// Cursor's traversal and collects the value bytes found at each one.
// Array elements are not addressable by path, and arrays are not part
// of a path: a field is matched by its object depth and the names of
// its enclosing fields, so a field in an object inside an array matches
// the path it would have if the array were not there.
type Extractor struct {
	key0, key1 uint64
	paths      []string
	targets    [][]uint64
}

// New returns an Extractor for the given dotted paths, using (key0,
// key1) as the siphash key. Any fixed, non-secret key works; the hash
// only needs to disambiguate field names, not resist an adversary.
func New(key0, key1 uint64, paths []string) *Extractor {
	e := &Extractor{key0: key0, key1: key1, paths: append([]string(nil), paths...)}
	e.targets = make([][]uint64, len(paths))
	for i, p := range paths {
		segs := strings.Split(p, ".")
		hs := make([]uint64, len(segs))
		for j, s := range segs {
			hs[j] = e.hash(s)
		}
		e.targets[i] = hs
	}
	return e
}

func (e *Extractor) hash(field string) uint64 {
	return siphash.Hash64(e.key0, e.key1, []byte(field))
}

// Extract drives cur to the end of the current value (an object, most
// usefully) and returns a map from path to the captured value bytes
// found there. Only scalar values are collected: a path absent from the
// result was either not present in the document or names an object or
// array value. Extract returns an error if the cursor fails structurally;
// a malformed document's error is not otherwise distinguishable from
// "the paths weren't found".
func (e *Extractor) Extract(cur *tinyjson.Cursor) (map[string][]byte, error) {
	results := make(map[string][]byte, len(e.paths))
	stack := make([]uint64, 0, 8)
	matchIdx := -1
	var buf []byte

	for cur.Read() {
		switch cur.NodeType() {
		case tinyjson.Field:
			d := cur.Depth()
			for len(stack) < d {
				stack = append(stack, 0)
			}
			stack = stack[:d]
			stack[d-1] = e.hash(string(cur.Value()))
			matchIdx = e.find(stack)
		case tinyjson.EndObject:
			d := cur.Depth()
			if len(stack) > d {
				stack = stack[:d]
			}
			matchIdx = -1
		case tinyjson.Object, tinyjson.Array:
			matchIdx = -1
		case tinyjson.Value:
			if matchIdx >= 0 {
				results[e.paths[matchIdx]] = append([]byte(nil), cur.Value()...)
			}
			matchIdx = -1
		case tinyjson.ValuePart:
			if matchIdx >= 0 {
				buf = append(buf, cur.Value()...)
			}
		case tinyjson.EndValuePart:
			if matchIdx >= 0 {
				buf = append(buf, cur.Value()...)
				results[e.paths[matchIdx]] = buf
			}
			buf = nil
			matchIdx = -1
		}
	}
	if cur.NodeType() == tinyjson.Error {
		return results, cur.Err().AsError()
	}
	return results, nil
}

func (e *Extractor) find(stack []uint64) int {
	for i, t := range e.targets {
		if slices.Equal(t, stack) {
			return i
		}
	}
	return -1
}
