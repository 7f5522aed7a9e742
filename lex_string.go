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

// String states, offsets from lexStringBase. These correspond to
// spec.md's 21=opening quote, 22=body, 24=after backslash, 25-28=hex
// digits (spec.md's 23, the "closing quote seen" terminal, is folded
// into the body transition below rather than kept as a distinct state,
// since nothing further needs to happen once the closing quote is
// recognized).
const (
	stringOpen   = 0 // opening quote
	stringBody   = 1 // ordinary body bytes
	stringEscape = 2 // just consumed '\'
	stringHex0   = 3 // expecting hex digit 1 of \uXXXX
	stringHex1   = 4
	stringHex2   = 5
	stringHex3   = 6
)

func hexDigit(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// stepString implements the string sub-machine. raw_strings, snapshotted
// into c.lex.rawStrings when the string began lexing, governs whether
// quotes/backslashes are captured verbatim (true) or stripped/decoded
// (false). A literal newline inside a string body is always illegal,
// regardless of mode.
func (c *Cursor) stepString() lexResult {
	offset := c.lex.state - lexStringBase
	if c.src.EOF() {
		return lexError
	}
	b := c.src.Current()

	switch offset {
	case stringOpen:
		if b != '"' {
			return lexError
		}
		if c.lex.rawStrings {
			c.consume(b)
		} else {
			c.advanceOnly()
		}
		c.lex.state = lexStringBase + stringBody
		return lexMore

	case stringBody:
		switch {
		case b == '"':
			if c.lex.rawStrings {
				c.consume(b)
			} else {
				c.advanceOnly()
			}
			c.valueType = None
			return lexDone
		case b == '\n':
			return lexError
		case b == '\\':
			if c.lex.rawStrings {
				c.consume(b)
			} else {
				c.advanceOnly()
			}
			c.lex.state = lexStringBase + stringEscape
			return lexMore
		default:
			c.consume(b)
			return lexMore
		}

	case stringEscape:
		if c.lex.rawStrings {
			// Raw mode never decodes; the escaped byte (even 'u') is
			// just more body text.
			c.consume(b)
			c.lex.state = lexStringBase + stringBody
			return lexMore
		}
		switch b {
		case '"', '\\', '/':
			c.src.Capture(b)
			c.src.Advance()
		case 'b':
			c.src.Capture('\b')
			c.src.Advance()
		case 'f':
			c.src.Capture('\f')
			c.src.Advance()
		case 'n':
			c.src.Capture('\n')
			c.src.Advance()
		case 'r':
			c.src.Capture('\r')
			c.src.Advance()
		case 't':
			c.src.Capture('\t')
			c.src.Advance()
		case 'u':
			c.advanceOnly()
			c.lex.hexVal = 0
			c.lex.state = lexStringBase + stringHex0
			return lexMore
		default:
			return lexError
		}
		c.lex.state = lexStringBase + stringBody
		return lexMore

	case stringHex0, stringHex1, stringHex2, stringHex3:
		d, ok := hexDigit(b)
		if !ok {
			return lexError
		}
		c.lex.hexVal = c.lex.hexVal*16 + rune(d)
		c.advanceOnly()
		if offset == stringHex3 {
			// spec.md Sec.9 Open Question 2: only the low byte of the
			// decoded 16-bit code unit is emitted; surrogate pairs and
			// full UTF-8 re-encoding are not produced. Preserved as-is
			// rather than widened (see DESIGN.md).
			c.src.Capture(byte(c.lex.hexVal))
			c.lex.state = lexStringBase + stringBody
			return lexMore
		}
		c.lex.state = lexStringBase + offset + 1
		return lexMore
	}
	return lexError
}
