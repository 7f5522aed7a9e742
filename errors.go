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

import "errors"

// Sentinel errors, one per ErrorKind, in the teacher's wrapped-sentinel
// style (see jsonrl.ErrNoMatch/ErrTooLarge): callers that only care
// whether parsing failed, not which way, can check errors.Is against
// these without switching on ErrorKind directly.
var (
	ErrUnterminatedObject  = errors.New("tinyjson: unterminated object")
	ErrUnterminatedArray   = errors.New("tinyjson: unterminated array")
	ErrUnterminatedString  = errors.New("tinyjson: unterminated string")
	ErrUnterminatedElement = errors.New("tinyjson: unterminated element")
	ErrIllegalLiteral      = errors.New("tinyjson: illegal literal")
	ErrIllegalCharacter    = errors.New("tinyjson: illegal character")
	ErrFieldTooLong        = errors.New("tinyjson: field name too long")
	ErrFieldMissingValue   = errors.New("tinyjson: field not followed by ':'")
)

var sentinelByKind = [...]error{
	NoError:                 nil,
	UnterminatedObject:      ErrUnterminatedObject,
	UnterminatedArray:       ErrUnterminatedArray,
	UnterminatedString:      ErrUnterminatedString,
	UnterminatedElement:     ErrUnterminatedElement,
	IllegalLiteral:          ErrIllegalLiteral,
	IllegalCharacter:        ErrIllegalCharacter,
	FieldTooLong:            ErrFieldTooLong,
	FieldMissingValue:       ErrFieldMissingValue,
}

// AsError returns the sentinel error for k, or nil for NoError.
func (k ErrorKind) AsError() error {
	if k < 0 || int(k) >= len(sentinelByKind) {
		return nil
	}
	return sentinelByKind[k]
}
