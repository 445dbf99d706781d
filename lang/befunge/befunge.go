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

// Package befunge provides utility functions to run classic Befunge-93 and
// one-dimensional tape programs on a funge Instance.
package befunge

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

// Dialect names.
const (
	Default = "default"
	B93     = "b93"
	Tape    = "tape"
)

// Befunge93 returns the options for the classic Befunge-93 dialect: an 80x25
// grid, get and put coordinates in column, row order, division by zero
// yielding 0, out of bounds put ignored and -1 pushed at end of input.
func Befunge93() []vm.Option {
	return []vm.Option{
		vm.Size(vm.DefaultWidth, vm.DefaultHeight),
		vm.Addressing(vm.ColRow),
		vm.DivByZero(vm.Zero),
		vm.PutBounds(vm.Ignore),
		vm.OnEOF(vm.MinusOne),
	}
}

// TapeOptions returns the options to run src as a one-dimensional program: the
// grid is a single row as wide as the first line of src.
func TapeOptions(src string) []vm.Option {
	line, _, _ := strings.Cut(src, "\n")
	w := utf8.RuneCountInString(strings.TrimSuffix(line, "\r"))
	if w == 0 {
		w = 1
	}
	return []vm.Option{vm.Size(w, 1)}
}

// Dialect returns the options for the named dialect. The tape dialect needs the
// program source to size the grid.
func Dialect(name, src string) ([]vm.Option, error) {
	switch name {
	case "", Default:
		return nil, nil
	case B93:
		return Befunge93(), nil
	case Tape:
		return TapeOptions(src), nil
	}
	return nil, errors.Errorf("unknown dialect %q", name)
}

// Load reads the program source in file fileName.
func Load(fileName string) (string, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return "", errors.Wrap(err, "load failed")
	}
	return string(b), nil
}

// SaveGrid saves the grid of s as source text to file fileName.
func SaveGrid(fileName string, s *vm.Space) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "write failed")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = s.WriteTo(w); err != nil {
		return errors.Wrap(err, "write failed")
	}
	return nil
}
