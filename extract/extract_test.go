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

package extract

import (
	"testing"

	"github.com/tinyjson/tinyjson"
	"github.com/tinyjson/tinyjson/source"
)

func TestExtractFlatAndNested(t *testing.T) {
	doc := `{"a":1,"b":{"c":"hello","d":true},"e":null}`
	cur := tinyjson.NewCursor(source.NewBytes([]byte(doc)))
	ex := New(1, 2, []string{"a", "b.c", "b.d", "missing"})

	got, err := ex.Extract(cur)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	cases := map[string]string{
		"a":   "1",
		"b.c": "hello",
		"b.d": "true",
	}
	for path, want := range cases {
		v, ok := got[path]
		if !ok {
			t.Fatalf("path %q not found", path)
		}
		if string(v) != want {
			t.Fatalf("path %q: got %q, want %q", path, v, want)
		}
	}
	if _, ok := got["missing"]; ok {
		t.Fatal("unexpected match for a path absent from the document")
	}
}

func TestExtractChunkedValue(t *testing.T) {
	doc := `{"big":"abcdefghijklmnop"}`
	cur := tinyjson.NewCursor(source.NewBytesCapacity([]byte(doc), 8))
	ex := New(7, 9, []string{"big"})

	got, err := ex.Extract(cur)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if string(got["big"]) != "abcdefghijklmnop" {
		t.Fatalf("got %q", got["big"])
	}
}
