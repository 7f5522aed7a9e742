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

// Command tinyjsondump walks every event a tinyjson.Cursor produces
// for its input and prints one line per event, for poking at how a
// document tokenizes without writing a test.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/tinyjson/tinyjson"
	"github.com/tinyjson/tinyjson/source"
)

func main() {
	capacity := flag.Int("capacity", source.DefaultCaptureCapacity, "capture buffer size")
	rawStrings := flag.Bool("raw-strings", false, "disable escape decoding")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	runID := uuid.New().String()
	log := func(format string, a ...any) {
		fmt.Fprintf(os.Stderr, "[%s] "+format+"\n", append([]any{runID}, a...)...)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for _, arg := range args {
		if err := dump(out, log, arg, *capacity, *rawStrings); err != nil {
			log("input %s: %s", arg, err)
			os.Exit(1)
		}
	}
}

func dump(out *bufio.Writer, log func(string, ...any), arg string, capacity int, rawStrings bool) error {
	var in *os.File
	if arg == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	log("tokenizing %s", arg)
	src := source.NewReaderCapacity(in, capacity)
	cur := tinyjson.NewCursor(src)
	cur.SetRawStrings(rawStrings)

	events := 0
	for cur.Read() {
		events++
		switch cur.NodeType() {
		case tinyjson.Value, tinyjson.ValuePart, tinyjson.EndValuePart, tinyjson.Field:
			fmt.Fprintf(out, "%-16s depth=%d %q\n", cur.NodeType(), cur.Depth(), cur.Value())
		default:
			fmt.Fprintf(out, "%-16s depth=%d\n", cur.NodeType(), cur.Depth())
		}
	}
	if cur.NodeType() == tinyjson.Error {
		return cur.Err().AsError()
	}
	log("%s: %d events", arg, events)
	return nil
}
