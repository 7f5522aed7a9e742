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

// The four lexer sub-machines share one integer state space, partitioned
// by base offset. Cursor.lex.state always holds base+offset for whichever
// machine is active; only one machine is ever active at a time, so the
// accumulator fields below (intAccum, realAccum, ...) are shared scratch
// space rather than one set per machine.
const (
	lexNumBase    = 0  // number: states 0-8
	lexBoolBase   = 9  // boolean: states 9-15
	lexNullBase   = 16 // null: states 16-20
	lexStringBase = 21 // string: states 21+
)

// lexResult is what a single lex step reports back to Cursor.Read's
// chunking loop.
type lexResult int

const (
	// lexMore means the lexeme is not finished; keep calling step.
	lexMore lexResult = iota
	// lexDone means the lexeme terminated on this step.
	lexDone
	// lexError means the byte under the cursor does not continue any
	// valid lexeme for the active machine.
	lexError
)

// lexScratch holds the scratch state shared by the four lexer
// sub-machines, matching spec.md's int_accum/real_accum/exp_accum/
// neg_flag/sub_mode.
type lexScratch struct {
	state     int
	intAccum  int64
	realAccum float64
	expAccum  uint64
	negFlag   bool
	subMode   int // 0=int, 1=has fraction, 2=has exponent, 3=negative exponent

	// boolean machine scratch: which literal ("true"/"false") is being
	// matched, decided from the first byte.
	litStr  string
	boolVal bool

	// string machine scratch: hex accumulator for \uXXXX, and the
	// raw_strings mode snapshotted when this string began lexing.
	hexVal     rune
	rawStrings bool
}

func (l *lexScratch) reset(base int) {
	l.state = base
	l.intAccum = 0
	l.realAccum = 0
	l.expAccum = 0
	l.negFlag = false
	l.subMode = 0
	l.litStr = ""
	l.boolVal = false
	l.hexVal = 0
}

// step dispatches to the active machine based on which base partition
// l.state currently falls in.
func (c *Cursor) step() lexResult {
	switch {
	case c.lex.state < lexBoolBase:
		return c.stepNumber()
	case c.lex.state < lexNullBase:
		return c.stepBoolean()
	case c.lex.state < lexStringBase:
		return c.stepNull()
	default:
		return c.stepString()
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
