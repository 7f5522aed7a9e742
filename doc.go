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

// Package tinyjson implements a streaming, pull-based JSON tokenizer for
// memory-constrained environments.
//
// A Cursor walks a byte stream one syntactic event at a time: object and
// array boundaries, field names, and scalar values. It never materializes
// a tree; callers drive it with repeated calls to Read and inspect
// NodeType/ValueType/Value after each call. Strings and numbers longer
// than the underlying Source's capture buffer are delivered as a sequence
// of ValuePart events instead of being buffered whole, so a Cursor's
// working memory is bounded by the capture buffer size plus a small fixed
// header, regardless of document size.
//
// The byte stream and its capture buffer are supplied by a Source (see
// the source subpackage for concrete adapters); Cursor only ever asks a
// Source for the byte under the cursor, to advance it, and to append
// bytes to its capture buffer.
package tinyjson
