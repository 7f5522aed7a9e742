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

//go:build go1.18

package tinyjson

import (
	"testing"

	"github.com/tinyjson/tinyjson/source"
)

func FuzzCursor(f *testing.F) {
	seeds := []string{
		`{"foo": -300, "bar": 1000, "baz": 3.141, "quux":3.0, "exp": 3.18e-9, "exp2": 3.1e+1}`,
		`{"foo": null, "bar": true, "baz": false}`,
		`{"list": ["a b", false], "list2": []}`,
		`{"struct": {"x": 3}, "struct2": {}}`,
		`{"str": "\r\n\\\"foo\"\b"}`,
		`{"str": "Ⴏ"}`,
		`[1,2,3]`,
		`[{"a":1},{"b":2}]`,
		``,
		`{`,
		`}`,
		`[`,
		`"unterminated`,
		`{"a":`,
		`{"a":1,}`,
		`nul`,
		`truee`,
	}
	for _, s := range seeds {
		f.Add([]byte(s), 1024)
	}
	f.Fuzz(func(t *testing.T, input []byte, capacity int) {
		if capacity < 1 {
			capacity = 1
		}
		if capacity > 1<<20 {
			capacity = 1 << 20
		}
		src := source.NewBytesCapacity(input, capacity)
		cur := NewCursor(src)
		// Only property under test: the cursor never panics and
		// always terminates (Read returning false eventually), for
		// any byte sequence and any capacity.
		for i := 0; i < len(input)+16; i++ {
			if !cur.Read() {
				return
			}
		}
		t.Fatalf("cursor did not terminate within len(input)+16 reads")
	})
}
