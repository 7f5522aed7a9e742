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

const nullLiteral = "null"

// Null literal matching, same shape as stepBoolean but with a single
// fixed word.
func (c *Cursor) stepNull() lexResult {
	offset := c.lex.state - lexNullBase
	if c.src.EOF() || offset >= len(nullLiteral) || c.src.Current() != nullLiteral[offset] {
		return lexError
	}
	c.consume(nullLiteral[offset])
	offset++
	if offset == len(nullLiteral) {
		c.valueType = Null
		return lexDone
	}
	c.lex.state = lexNullBase + offset
	return lexMore
}
