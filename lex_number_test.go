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

func TestPositiveExponentIsCorrect(t *testing.T) {
	cur := NewCursor(source.NewBytes([]byte("6.02e2")))
	if !cur.Read() || cur.ValueType() != Real {
		t.Fatalf("Read failed or wrong type: %v %v", cur.Err(), cur.ValueType())
	}
	if got := cur.ValueReal(); got != 602 {
		t.Fatalf("got %v, want 602", got)
	}
}

func TestNegativeExponentPreservesMultiplyBug(t *testing.T) {
	// See finishNumber's doc comment: a negative exponent is applied
	// as a multiply rather than a divide, matching the reference
	// implementation's behavior rather than the mathematically
	// intended one. 6.02e-2 "should" be 0.0602; this asserts the
	// value the preserved logic actually produces.
	cur := NewCursor(source.NewBytes([]byte("6.02e-2")))
	if !cur.Read() || cur.ValueType() != Real {
		t.Fatalf("Read failed or wrong type: %v %v", cur.Err(), cur.ValueType())
	}
	if got := cur.ValueReal(); got != 602 {
		t.Fatalf("got %v, want 602 (preserved-bug result)", got)
	}
}

func TestLeadingZeroTerminatesNumberAtOneDigit(t *testing.T) {
	// The grammar only allows a single '0' or a [1-9][0-9]* run as the
	// integer part; a leading zero always ends the number lexeme at
	// one digit; "01" is therefore the number 0 followed by a second,
	// structurally invalid top-level token.
	cur := NewCursor(source.NewBytes([]byte("01")))
	if !cur.Read() {
		t.Fatalf("Read failed: %v", cur.Err())
	}
	if cur.ValueType() != Integer || cur.ValueInt() != 0 {
		t.Fatalf("first value = %v %v, want Integer 0", cur.ValueType(), cur.ValueInt())
	}
	if cur.Read() {
		t.Fatal("expected the trailing '1' to be rejected as a second top-level token")
	}
	if cur.Err() != IllegalCharacter {
		t.Fatalf("err = %v, want IllegalCharacter", cur.Err())
	}
}

func TestBooleanAndNullLiterals(t *testing.T) {
	for _, c := range []struct {
		in   string
		want ValueType
	}{
		{"true", Boolean},
		{"false", Boolean},
		{"null", Null},
	} {
		cur := NewCursor(source.NewBytes([]byte(c.in)))
		if !cur.Read() {
			t.Fatalf("%s: Read failed: %v", c.in, cur.Err())
		}
		if cur.ValueType() != c.want {
			t.Fatalf("%s: type = %v, want %v", c.in, cur.ValueType(), c.want)
		}
	}
	cur := NewCursor(source.NewBytes([]byte("true")))
	cur.Read()
	if !cur.ValueBool() {
		t.Fatal("ValueBool() for \"true\" literal returned false")
	}
}
