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

// Command tinyjsonget extracts the values at a fixed set of dotted
// field paths from a JSON document, one path per -p flag.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/tinyjson/tinyjson"
	"github.com/tinyjson/tinyjson/extract"
	"github.com/tinyjson/tinyjson/source"
)

type pathList []string

func (p *pathList) String() string { return strings.Join(*p, ",") }
func (p *pathList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var paths pathList
	flag.Var(&paths, "p", "dotted field path to extract (repeatable)")
	capacity := flag.Int("capacity", source.DefaultCaptureCapacity, "capture buffer size")
	flag.Parse()

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -p path is required")
		os.Exit(1)
	}

	args := flag.Args()
	in := os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "can't open %q: %s\n", args[0], err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	runID := uuid.New().String()
	src := source.NewReaderCapacity(in, *capacity)
	cur := tinyjson.NewCursor(src)
	ex := extract.New(0x9ae16a3b2f90404f, 0xc2b2ae3d27d4eb4f, paths)

	got, err := ex.Extract(cur)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] extract failed: %s\n", runID, err)
		os.Exit(1)
	}
	for _, p := range paths {
		v, ok := got[p]
		if !ok {
			fmt.Fprintf(os.Stderr, "[%s] %s: not found\n", runID, p)
			continue
		}
		fmt.Printf("%s=%s\n", p, v)
	}
}
