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

import "math"

// Number grammar: -?(0|[1-9][0-9]*)(.[0-9]+)?([eE][+-]?[0-9]+)?
//
// States (offsets from lexNumBase):
//
//	0 entry
//	1 after '-'
//	2 after a leading '0'                          (accepting)
//	3 fractional entry, expects a digit
//	4 fractional digits                             (accepting)
//	5 exponent entry, expects a sign or digit
//	6 after an exponent sign, expects a digit
//	7 exponent digits                               (accepting)
//	8 integer digits after a nonzero leading digit  (accepting)
func (c *Cursor) stepNumber() lexResult {
	st := c.lex.state - lexNumBase
	eof := c.src.EOF()
	var b byte
	if !eof {
		b = c.src.Current()
	}

	switch st {
	case 0:
		switch {
		case !eof && b == '-':
			c.lex.negFlag = true
			c.consume(b)
			c.lex.state = lexNumBase + 1
			return lexMore
		case !eof && b == '0':
			c.consume(b)
			c.lex.state = lexNumBase + 2
			return lexMore
		case !eof && isDigit(b):
			c.lex.intAccum = int64(b - '0')
			c.lex.realAccum = float64(c.lex.intAccum)
			c.consume(b)
			c.lex.state = lexNumBase + 8
			return lexMore
		}
	case 1:
		switch {
		case !eof && b == '0':
			c.consume(b)
			c.lex.state = lexNumBase + 2
			return lexMore
		case !eof && isDigit(b):
			c.lex.intAccum = int64(b - '0')
			c.lex.realAccum = float64(c.lex.intAccum)
			c.consume(b)
			c.lex.state = lexNumBase + 8
			return lexMore
		}
	case 2:
		switch {
		case !eof && b == '.':
			c.consume(b)
			c.lex.state = lexNumBase + 3
			return lexMore
		case !eof && (b == 'e' || b == 'E'):
			c.consume(b)
			c.lex.state = lexNumBase + 5
			return lexMore
		}
	case 3:
		if !eof && isDigit(b) {
			c.lex.subMode = 1
			c.fracDigits = 1
			c.lex.realAccum += float64(b-'0') / math.Pow(10, float64(c.fracDigits))
			c.consume(b)
			c.lex.state = lexNumBase + 4
			return lexMore
		}
	case 4:
		switch {
		case !eof && isDigit(b):
			c.fracDigits++
			c.lex.realAccum += float64(b-'0') / math.Pow(10, float64(c.fracDigits))
			c.consume(b)
			return lexMore
		case !eof && (b == 'e' || b == 'E'):
			c.consume(b)
			c.lex.state = lexNumBase + 5
			return lexMore
		}
	case 5:
		switch {
		case !eof && (b == '+' || b == '-'):
			if b == '-' {
				c.lex.subMode = 3
			} else if c.lex.subMode == 0 {
				c.lex.subMode = 2
			}
			c.consume(b)
			c.lex.state = lexNumBase + 6
			return lexMore
		case !eof && isDigit(b):
			if c.lex.subMode == 0 {
				c.lex.subMode = 2
			}
			c.lex.expAccum = uint64(b - '0')
			c.consume(b)
			c.lex.state = lexNumBase + 7
			return lexMore
		}
	case 6:
		if !eof && isDigit(b) {
			c.lex.expAccum = uint64(b - '0')
			c.consume(b)
			c.lex.state = lexNumBase + 7
			return lexMore
		}
	case 7:
		if !eof && isDigit(b) {
			c.lex.expAccum = c.lex.expAccum*10 + uint64(b-'0')
			c.consume(b)
			return lexMore
		}
	case 8:
		switch {
		case !eof && isDigit(b):
			c.lex.intAccum = c.lex.intAccum*10 + int64(b-'0')
			c.lex.realAccum = c.lex.realAccum*10 + float64(b-'0')
			c.consume(b)
			return lexMore
		case !eof && b == '.':
			c.consume(b)
			c.lex.state = lexNumBase + 3
			return lexMore
		case !eof && (b == 'e' || b == 'E'):
			c.consume(b)
			c.lex.state = lexNumBase + 5
			return lexMore
		}
	}

	if st == 2 || st == 4 || st == 7 || st == 8 {
		c.finishNumber()
		return lexDone
	}
	return lexError
}

// finishNumber applies sign and exponent to the accumulated number and
// sets valueType.
//
// NOTE: exponent application always multiplies by 10^expAccum, even when
// subMode==3 (negative exponent) -- expAccum is never negated first.
// This mirrors a suspect behavior in the reference implementation (see
// spec.md Sec.9 Open Question 1, and DESIGN.md); it is preserved here
// rather than silently fixed.
func (c *Cursor) finishNumber() {
	if c.lex.expAccum > 0 {
		mul := math.Pow(10, float64(c.lex.expAccum))
		c.lex.realAccum *= mul
		c.lex.intAccum = int64(float64(c.lex.intAccum) * mul)
	}
	if c.lex.negFlag {
		c.lex.intAccum = -c.lex.intAccum
		c.lex.realAccum = -c.lex.realAccum
	}
	if c.lex.subMode != 0 {
		c.valueType = Real
	} else {
		c.valueType = Integer
	}
}
