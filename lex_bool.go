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

// Boolean literal matching: "true" or "false", picked by the first byte.
// c.lex.state walks base+0 .. base+len(word)-1 as each byte of the
// literal is matched.
func (c *Cursor) stepBoolean() lexResult {
	offset := c.lex.state - lexBoolBase
	if c.src.EOF() {
		return lexError
	}
	b := c.src.Current()
	if offset == 0 {
		switch b {
		case 't':
			c.lex.litStr = "true"
			c.lex.boolVal = true
		case 'f':
			c.lex.litStr = "false"
			c.lex.boolVal = false
		default:
			return lexError
		}
	}
	if offset >= len(c.lex.litStr) || b != c.lex.litStr[offset] {
		return lexError
	}
	c.consume(b)
	offset++
	if offset == len(c.lex.litStr) {
		c.lex.intAccum = 0
		if c.lex.boolVal {
			c.lex.intAccum = 1
		}
		c.valueType = Boolean
		return lexDone
	}
	c.lex.state = lexBoolBase + offset
	return lexMore
}
