// This file is part of funge - https://github.com/db47h/funge
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package asm

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/db47h/funge/internal/fi"
	"github.com/db47h/funge/vm"
)

// Assemble compiles the assembly listing read from the supplied io.Reader and
// returns the resulting program source, a single line of text.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (string, error) {
	p := new(parser)
	return p.Parse(name, r)
}

// Disassemble writes a disassembly of the cell at position p in s to the
// specified io.Writer and returns any write error.
//
// Cells holding an opcode are written as the opcode mnemonic. Other printable
// characters are written as character literals and anything else as an integer.
func Disassemble(s *vm.Space, p vm.Pos, w io.Writer) error {
	ew := fi.NewErrWriter(w)
	c := s.Read(p)
	if op := c.Op(); op != vm.OpUnknown {
		ew.WriteString(op.String())
		return ew.Err
	}
	if r, ok := c.Rune(); ok && unicode.IsPrint(r) {
		ew.WriteString(strconv.QuoteRune(r))
	} else {
		ew.WriteString(strconv.Itoa(int(c)))
	}
	return ew.Err
}

// DisassembleAll writes a disassembly of all non-blank cells of s to the
// specified io.Writer, one per line, in row major order. It will return any
// write error.
func DisassembleAll(s *vm.Space, w io.Writer) error {
	ew := fi.NewErrWriter(w)
	for row := 0; row < s.Height(); row++ {
		for col, c := range s.Row(row) {
			if c == ' ' {
				continue
			}
			p := vm.Pos{Row: row, Col: col}
			fmt.Fprintf(ew, "%10v\t", p)
			Disassemble(s, p, ew)
			ew.Write([]byte{'\n'})
			if ew.Err != nil {
				return ew.Err
			}
		}
	}
	return nil
}
