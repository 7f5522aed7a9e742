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

import (
	"testing"

	"github.com/tinyjson/tinyjson/source"
)

func TestUnicodeEscapeLowByteOnly(t *testing.T) {
	// spec.md Sec.9 Open Question 2: a \uXXXX escape decodes to the low
	// byte of the 16-bit code unit only; no surrogate pairs, no UTF-8
	// re-encoding. A decodes to plain ASCII 'A'. Ł (a code
	// point outside a single byte) truncates to the same low byte 0x41
	// rather than being re-encoded as UTF-8.
	esc := []byte{'"', '\\', 'u', '0', '0', '4', '1', '"'}
	cur := NewCursor(source.NewBytes(esc))
	if !cur.Read() {
		t.Fatalf("Read failed: %v", cur.Err())
	}
	if got := string(cur.Value()); got != "A" {
		t.Fatalf("got %q, want %q", got, "A")
	}

	esc = []byte{'"', '\\', 'u', '0', '1', '4', '1', '"'}
	cur = NewCursor(source.NewBytes(esc))
	if !cur.Read() {
		t.Fatalf("Read failed: %v", cur.Err())
	}
	if got := cur.Value(); len(got) != 1 || got[0] != 0x41 {
		t.Fatalf("got %v, want a single 0x41 byte", got)
	}
}

func TestUnterminatedString(t *testing.T) {
	cur := NewCursor(source.NewBytes([]byte(`"abc`)))
	if cur.Read() {
		t.Fatal("expected failure on an unterminated string")
	}
	if cur.Err() != IllegalLiteral {
		t.Fatalf("err = %v, want IllegalLiteral", cur.Err())
	}
}

func TestLiteralNewlineInStringIsIllegal(t *testing.T) {
	cur := NewCursor(source.NewBytes([]byte("\"a\nb\"")))
	if cur.Read() {
		t.Fatal("expected failure on an embedded literal newline")
	}
	if cur.Err() != IllegalLiteral {
		t.Fatalf("err = %v, want IllegalLiteral", cur.Err())
	}
}

func TestUnknownEscapeIsIllegal(t *testing.T) {
	cur := NewCursor(source.NewBytes([]byte(`"a\qb"`)))
	if cur.Read() {
		t.Fatal("expected failure on an unrecognized escape letter")
	}
	if cur.Err() != IllegalLiteral {
		t.Fatalf("err = %v, want IllegalLiteral", cur.Err())
	}
}

func TestAllSingleByteEscapes(t *testing.T) {
	cur := NewCursor(source.NewBytes([]byte(`"\"\\\/\b\f\n\r\t"`)))
	if !cur.Read() {
		t.Fatalf("Read failed: %v", cur.Err())
	}
	want := "\"\\/\b\f\n\r\t"
	if got := string(cur.Value()); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
