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

package befunge_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/db47h/funge/lang/befunge"
	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

func run(t *testing.T, dialect, src string) string {
	t.Helper()
	opts, err := befunge.Dialect(dialect, src)
	if err != nil {
		t.Fatal(err)
	}
	out, err := vm.Exec(context.Background(), src, opts...)
	if err != nil {
		t.Fatalf("%s %q: %+v", dialect, src, err)
	}
	return out
}

func TestDialect(t *testing.T) {
	var cases = []struct {
		dialect, src, out string
	}{
		{befunge.B93, "88*90p7.3.@", "7 "},
		{befunge.Default, "88*09p7.3.@", "7 "},
		{"", "02>g,@", ">"},
		{befunge.B93, "10/.@", "0 "},
		{befunge.B93, "~.@", "-1 "},
		{befunge.B93, "1099*p2.@", "2 "},
		{befunge.Tape, "<@.7", "7 "},
		{befunge.Tape, "#@1.@", "1 "},
		{befunge.Tape, "1.@\nthis line is dropped", "1 "},
	}
	for _, c := range cases {
		if out := run(t, c.dialect, c.src); out != c.out {
			t.Errorf("%s %q: expected %q, got %q", c.dialect, c.src, c.out, out)
		}
	}
	if _, err := befunge.Dialect("b98", ""); err == nil {
		t.Error("expected error for unknown dialect")
	}
	i, err := vm.New("", befunge.TapeOptions("")...)
	if err != nil {
		t.Fatal(err)
	}
	if i.Space.Width() != 1 || i.Space.Height() != 1 {
		t.Errorf("empty tape: got %dx%d", i.Space.Width(), i.Space.Height())
	}
}

func TestSaveGrid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "grid.bf")
	i, err := vm.New("88*09p7.3.@")
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err = befunge.SaveGrid(fn, i.Space); err != nil {
		t.Fatal(err)
	}
	src, err := befunge.Load(fn)
	if err != nil {
		t.Fatal(err)
	}
	if src != "88*09p7.3@@\n" {
		t.Errorf("got %q", src)
	}

	if err = befunge.SaveGrid(filepath.Join(fn, "nope"), i.Space); err == nil {
		t.Error("expected error")
	}
	if _, err = befunge.Load(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestDumpVM(t *testing.T) {
	i, err := vm.New("12v\n  @")
	if err != nil {
		t.Fatal(err)
	}
	if err = i.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	if err = befunge.DumpVM(i, &b); err != nil {
		t.Fatal(err)
	}
	exp := "\x1C1 2\x1D1 2 3\x1D12v\n  @\n"
	if b.String() != exp {
		t.Errorf("expected %q, got %q", exp, b.String())
	}

	i, _ = vm.New("")
	b.Reset()
	befunge.DumpVM(i, &b)
	if exp = "\x1C\x1D0 0 0\x1D"; b.String() != exp {
		t.Errorf("expected %q, got %q", exp, b.String())
	}
}
