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

// Cursor is the pull-parser state machine: the externally visible
// object a caller drives with repeated calls to Read. It never
// materializes a tree; it only tracks node type, container depth, and
// enough lexer scratch state to resume a chunked scalar across calls.
//
// A Cursor is move-only in spirit (copying one mid-parse and using both
// copies is not supported) and must not be used concurrently from
// multiple goroutines.
type Cursor struct {
	src Source

	node NodeType
	err  ErrorKind

	valueType ValueType
	lex       lexScratch

	rawStrings bool
	chunking   bool
	fracDigits int

	depth int
	// containerStack tracks the kind ('O' or 'A') of each currently
	// open container, so that read_any can tell whether a subsequent
	// element position expects a field name or a bare value.
	containerStack []byte
}

// NewCursor returns a Cursor that will pull bytes from src.
func NewCursor(src Source) *Cursor {
	return &Cursor{src: src, node: Initial}
}

// NodeType returns the event produced by the most recent Read call (or
// Initial, before the first call). It reports Error once the cursor has
// failed, regardless of what Read returns.
func (c *Cursor) NodeType() NodeType {
	if c.err != NoError {
		return Error
	}
	return c.node
}

// ValueType returns the scalar type of the current event. It is None
// unless NodeType is Value or EndValuePart.
func (c *Cursor) ValueType() ValueType {
	if c.node != Value && c.node != EndValuePart {
		return None
	}
	return c.valueType
}

// Value returns the capture buffer's contents for the current event. It
// is only meaningful when NodeType is one of Field, Value, ValuePart, or
// EndValuePart, and the returned slice is only valid until the next
// call to Read.
func (c *Cursor) Value() []byte {
	return c.src.CaptureBuffer()
}

// IsValue reports whether the current event is any of Value, ValuePart,
// or EndValuePart.
func (c *Cursor) IsValue() bool {
	return c.node == Value || c.node == ValuePart || c.node == EndValuePart
}

// Depth returns the number of currently open JSON objects. Arrays are
// tracked grammatically but do not affect Depth.
func (c *Cursor) Depth() int { return c.depth }

// Err returns the sticky error kind, or NoError if the cursor has not
// failed.
func (c *Cursor) Err() ErrorKind { return c.err }

// RawStrings reports whether raw-strings mode is enabled.
func (c *Cursor) RawStrings() bool { return c.rawStrings }

// SetRawStrings toggles raw-strings mode. It takes effect only on
// strings lexed after the call; a string already in flight keeps the
// mode it started with.
func (c *Cursor) SetRawStrings(raw bool) { c.rawStrings = raw }

// ValueInt coerces the current value to an int64. Booleans coerce to 0
// or 1; strings and any other non-numeric value coerce to 0.
func (c *Cursor) ValueInt() int64 {
	switch c.ValueType() {
	case Integer, Boolean:
		return c.lex.intAccum
	case Real:
		return int64(c.lex.realAccum)
	default:
		return 0
	}
}

// ValueReal coerces the current value to a float64. Booleans coerce to
// 0.0 or 1.0; strings and any other non-numeric value coerce to 0.0.
func (c *Cursor) ValueReal() float64 {
	switch c.ValueType() {
	case Real:
		return c.lex.realAccum
	case Integer:
		return float64(c.lex.intAccum)
	case Boolean:
		return float64(c.lex.intAccum)
	default:
		return 0
	}
}

// ValueBool coerces the current value to a bool. Only Boolean is
// meaningful; every other type coerces to false.
func (c *Cursor) ValueBool() bool {
	if c.ValueType() != Boolean {
		return false
	}
	return c.lex.intAccum != 0
}

func (c *Cursor) fail(kind ErrorKind) {
	if c.err == NoError {
		c.err = kind
	}
	c.node = Error
}

func (c *Cursor) pushContainer(kind byte) {
	c.containerStack = append(c.containerStack, kind)
}

func (c *Cursor) popContainer() {
	if len(c.containerStack) > 0 {
		c.containerStack = c.containerStack[:len(c.containerStack)-1]
	}
}

func (c *Cursor) topContainer() (byte, bool) {
	if len(c.containerStack) == 0 {
		return 0, false
	}
	return c.containerStack[len(c.containerStack)-1], true
}

// consume captures the byte under the cursor and advances past it.
func (c *Cursor) consume(b byte) {
	c.src.Capture(b)
	c.src.Advance()
}

// advanceOnly moves past the byte under the cursor without capturing
// it (used for quotes/backslashes that are stripped in non-raw mode,
// and for escape-introducer bytes whose decoded substitute is captured
// separately).
func (c *Cursor) advanceOnly() {
	c.src.Advance()
}

func isSpace(b byte) bool {
	// Space, tab, and LF only. Carriage return is deliberately NOT
	// treated as whitespace here: spec.md Sec.9 Open Question 3 flags
	// this as matching suspect-but-preserved behavior in the reference
	// implementation rather than a stdlib-style oversight. See
	// DESIGN.md.
	return b == ' ' || b == '\t' || b == '\n'
}

func (c *Cursor) skipWhitespace() {
	for !c.src.EOF() && isSpace(c.src.Current()) {
		c.src.Advance()
	}
}

// Read advances the cursor to the next event and reports whether one
// was produced. It returns false when the document is exhausted
// cleanly (NodeType()==EndDocument) or the cursor has failed
// (NodeType()==Error); once failed, every subsequent call returns
// false.
func (c *Cursor) Read() bool {
	c.src.EnsureStarted()
	if c.err != NoError {
		c.node = Error
		return false
	}
	if c.node == EndDocument {
		return false
	}

	switch c.node {
	case Initial:
		return c.readAnyOpen(true)
	case ValuePart:
		return c.resumeLex()
	case Value, EndValuePart, EndArray, EndObject:
		return c.readAny()
	case Array:
		return c.readValueOrEndArray()
	case Object:
		return c.readFieldOrEndObject()
	case Field:
		return c.readAnyOpen(false)
	default:
		return false
	}
}

// readAnyOpen expects any value start: '[', '{', a number, a literal, or
// a string. topLevel distinguishes the very first call (where a clean
// EOF means an empty document, not an error) from every other call
// (where a missing value is a grammar error).
func (c *Cursor) readAnyOpen(topLevel bool) bool {
	c.skipWhitespace()
	if c.src.EOF() {
		if topLevel {
			c.node = EndDocument
			return false
		}
		// A value was expected but the stream ended: the enclosing
		// container (if any) was never closed.
		if top, ok := c.topContainer(); ok {
			if top == 'A' {
				c.fail(UnterminatedArray)
			} else {
				c.fail(UnterminatedObject)
			}
		} else {
			c.fail(IllegalLiteral)
		}
		return false
	}

	switch b := c.src.Current(); {
	case b == '[':
		c.src.Advance()
		c.pushContainer('A')
		c.node = Array
		return true
	case b == '{':
		c.src.Advance()
		c.pushContainer('O')
		c.depth++
		c.node = Object
		return true
	case b == '-' || isDigit(b):
		return c.beginValue(lexNumBase)
	case b == 't' || b == 'f':
		return c.beginValue(lexBoolBase)
	case b == 'n':
		return c.beginValue(lexNullBase)
	case b == '"':
		return c.beginValue(lexStringBase)
	case b == '}' || b == ']' || b == ',' || b == ':':
		c.fail(IllegalCharacter)
		return false
	default:
		c.fail(IllegalLiteral)
		return false
	}
}

// readValueOrEndArray handles the position right after '[': either ']'
// immediately, or any value.
func (c *Cursor) readValueOrEndArray() bool {
	c.skipWhitespace()
	if c.src.EOF() {
		c.fail(UnterminatedArray)
		return false
	}
	if c.src.Current() == ']' {
		c.src.Advance()
		c.popContainer()
		c.node = EndArray
		return true
	}
	return c.readAnyOpen(false)
}

// readFieldOrEndObject handles the position right after '{': either '}'
// immediately, or a quoted field name followed by ':'.
func (c *Cursor) readFieldOrEndObject() bool {
	c.skipWhitespace()
	if c.src.EOF() {
		c.fail(UnterminatedObject)
		return false
	}
	if c.src.Current() == '}' {
		c.src.Advance()
		c.depth--
		c.popContainer()
		c.node = EndObject
		return true
	}
	return c.readFieldName()
}

// readFieldName expects a quoted field name (never chunked) followed by
// ':'.
func (c *Cursor) readFieldName() bool {
	if c.src.EOF() || c.src.Current() != '"' {
		c.fail(IllegalCharacter)
		return false
	}
	if !c.beginFieldName() {
		return false
	}
	c.skipWhitespace()
	if c.src.EOF() || c.src.Current() != ':' {
		c.fail(FieldMissingValue)
		return false
	}
	c.src.Advance()
	c.node = Field
	return true
}

// readAny handles the position after a complete value or a closed
// container: an optional comma (possibly followed by a field name, if
// the enclosing container is an object) and then the next value, or the
// container's closing bracket.
func (c *Cursor) readAny() bool {
	c.skipWhitespace()
	if c.src.EOF() {
		if top, ok := c.topContainer(); ok {
			if top == 'A' {
				c.fail(UnterminatedArray)
			} else {
				c.fail(UnterminatedObject)
			}
			return false
		}
		c.node = EndDocument
		return false
	}

	switch b := c.src.Current(); b {
	case ']':
		c.src.Advance()
		c.popContainer()
		c.node = EndArray
		return true
	case '}':
		if c.depth == 0 {
			c.fail(IllegalCharacter)
			return false
		}
		c.src.Advance()
		c.depth--
		c.popContainer()
		c.node = EndObject
		return true
	case ',':
		c.src.Advance()
		c.skipWhitespace()
		if c.src.EOF() {
			c.fail(UnterminatedElement)
			return false
		}
		if top, ok := c.topContainer(); ok && top == 'O' {
			return c.readFieldName()
		}
		return c.readAnyOpen(false)
	default:
		c.fail(IllegalCharacter)
		return false
	}
}

// beginValue starts lexing a fresh scalar value using the sub-machine
// rooted at base, driving it until it either completes in one buffer
// fill (Value) or the capture-capacity guard trips (ValuePart).
func (c *Cursor) beginValue(base int) bool {
	c.lex.reset(base)
	c.lex.rawStrings = c.rawStrings
	c.fracDigits = 0
	c.chunking = false
	c.valueType = None
	c.src.ClearCapture()
	return c.driveLoop()
}

// resumeLex continues a chunked scalar from its preserved lex state,
// after the caller clears the capture buffer for the new chunk.
func (c *Cursor) resumeLex() bool {
	c.src.ClearCapture()
	return c.driveLoop()
}

// driveLoop runs the active lexer sub-machine until it finishes or the
// capture buffer no longer has room for another step to safely append
// to (the 3-byte safety margin from spec.md Sec.4.2).
func (c *Cursor) driveLoop() bool {
	for c.src.CaptureSize() < c.src.CaptureCapacity()-3 {
		switch c.step() {
		case lexMore:
			continue
		case lexDone:
			if c.chunking {
				c.node = EndValuePart
			} else {
				c.node = Value
			}
			return true
		case lexError:
			c.fail(IllegalLiteral)
			return false
		}
	}
	c.chunking = true
	c.node = ValuePart
	return true
}

// beginFieldName lexes a field name string. Unlike beginValue, it never
// yields ValuePart: a field name that would need to chunk raises
// FieldTooLong instead (spec.md Sec.3 invariant).
func (c *Cursor) beginFieldName() bool {
	c.lex.reset(lexStringBase)
	c.lex.rawStrings = c.rawStrings
	c.src.ClearCapture()
	for {
		if c.src.CaptureSize() >= c.src.CaptureCapacity()-3 {
			c.fail(FieldTooLong)
			return false
		}
		switch c.stepString() {
		case lexMore:
			continue
		case lexDone:
			return true
		case lexError:
			c.fail(IllegalLiteral)
			return false
		}
	}
}
