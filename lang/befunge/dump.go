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

package befunge

import (
	"io"
	"strconv"

	"github.com/db47h/funge/vm"
)

func dumpSlice(w io.Writer, prefix byte, a []vm.Cell) error {
	var err error
	l := len(a) - 1
	b := make([]byte, 0, 14)
	b = append(b, prefix)
	if l >= 0 {
		for i := 0; i < l; i++ {
			b = strconv.AppendInt(b, int64(a[i]), 10)
			b = append(b, ' ')
			_, err = w.Write(b)
			if err != nil {
				return err
			}
			b = b[:0]
		}
		b = strconv.AppendInt(b, int64(a[l]), 10)
	}
	_, err = w.Write(b)
	return err
}

// DumpVM dumps the instance stack, instruction pointer and grid to the
// specified io.Writer. Sections are separated by ASCII file (0x1C) and group
// (0x1D) separators: stack, then row, column and direction of the instruction
// pointer, then the grid as source text.
func DumpVM(i *vm.Instance, w io.Writer) error {
	err := dumpSlice(w, '\x1C', i.Data())
	if err != nil {
		return err
	}
	err = dumpSlice(w, '\x1D', []vm.Cell{vm.Cell(i.PC.Row), vm.Cell(i.PC.Col), vm.Cell(i.Dir)})
	if err != nil {
		return err
	}
	if _, err = w.Write([]byte{'\x1D'}); err != nil {
		return err
	}
	_, err = i.Space.WriteTo(w)
	return err
}
