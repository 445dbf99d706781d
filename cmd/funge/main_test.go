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

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestParseArgs(t *testing.T) {
	cfg, f, rest, err := parseArgs([]string{"prog.bf"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != defaultConfig() || f.configFile != "" || len(rest) != 1 || rest[0] != "prog.bf" {
		t.Errorf("defaults: got %+v, %+v, %v", cfg, f, rest)
	}

	conf := writeFile(t, "funge.toml", `
dialect = "b93"
width = 40
div_by_zero = "fault"
max_steps = 1000
raw = true
`)
	cfg, _, _, err = parseArgs([]string{"-config", conf, "-width", "60", "-noraw", "prog.bf"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	exp := defaultConfig()
	exp.Dialect = "b93"
	exp.Width = 60
	exp.DivByZero = "fault"
	exp.MaxSteps = 1000
	exp.Raw = false
	if cfg != exp {
		t.Errorf("expected %+v, got %+v", exp, cfg)
	}

	// flags before -config still win
	cfg, _, _, err = parseArgs([]string{"-max-steps", "5", "-config", conf, "prog.bf"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxSteps != 5 || cfg.Width != 40 {
		t.Errorf("got %+v", cfg)
	}

	bad := writeFile(t, "bad.toml", "widht = 40\n")
	if _, _, _, err = parseArgs([]string{"-config", bad, "prog.bf"}, io.Discard); err == nil || !strings.Contains(err.Error(), "widht") {
		t.Errorf("expected unknown key error, got %v", err)
	}
	if _, _, _, err = parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")}, io.Discard); err == nil {
		t.Error("expected error for missing config file")
	}
	if _, _, _, err = parseArgs([]string{"-bogus"}, io.Discard); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestOptions(t *testing.T) {
	var bad = []config{
		{Dialect: "b98"},
		{DivByZero: "panic"},
		{PutBounds: "nope"},
		{OnEOF: "?"},
		{Addressing: "xy"},
	}
	for _, c := range bad {
		if _, err := c.options("@"); err == nil {
			t.Errorf("%+v: expected error", c)
		}
	}
	c := config{Dialect: "b93", Height: 3, Addressing: "RowCol", DivByZero: "fault", MaxSteps: 10, MaxOutput: 10}
	opts, err := c.options("@")
	if err != nil {
		t.Fatal(err)
	}
	// 5 from the dialect
	if len(opts) != 10 {
		t.Errorf("expected 10 options, got %d", len(opts))
	}
}

func runCmd(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestInputFileClose(t *testing.T) {
	fw, err := os.Open(writeFile(t, "in.txt", "ab"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := vm.Exec(context.Background(), "~,~,~,@",
		vm.Input(strings.NewReader("")),
		vm.Input(newInputFile(fw)))
	if err != nil {
		t.Fatal(err)
	}
	if out != "ab" {
		t.Errorf("expected output %q, got %q", "ab", out)
	}
	if err = fw.Close(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("expected exhausted input file to be closed, got %v", err)
	}
}

func TestRun(t *testing.T) {
	hello := writeFile(t, "hello.bf", `"!dlroW ,olleH">:#,_@`+"\n")
	dir := t.TempDir()
	saved := filepath.Join(dir, "saved.bf")
	trace := filepath.Join(dir, "trace.json")
	w1 := writeFile(t, "w1.txt", "ab")
	w2 := writeFile(t, "w2.txt", "c")
	listing := writeFile(t, "hello.fa", `"!iH" emit emit emit halt`)
	limits := writeFile(t, "limits.toml", "max_steps = 100\n")

	var cases = []struct {
		name  string
		stdin string
		args  []string
		code  int
		out   string
		err   string
	}{
		{"hello", "", []string{hello}, 0, "Hello, World!", ""},
		{"stdin", "12+.@", []string{"-"}, 0, "3 ", ""},
		{"inputs", "d", []string{"-with", w1, "-with", w2, writeFile(t, "in.bf", "~,~,~,~,@")}, 0, "abcd", ""},
		{"asm", "", []string{"-asm", listing}, 0, "Hi!", ""},
		{"disasm", "", []string{"-disasm", writeFile(t, "d.bf", "1.@")}, 0, "     (0,0)\t1\n     (0,1)\tprint\n     (0,2)\thalt\n", ""},
		{"dump", "", []string{"-dump", writeFile(t, "dump.bf", "12@")}, 0, "\x1C1 2\x1D0 2 0\x1D12@\n", ""},
		{"b93", "", []string{"-dialect", "b93", writeFile(t, "b93.bf", "10/.@")}, 0, "0 ", ""},
		{"div zero", "", []string{writeFile(t, "div.bf", "5.10/.@")}, 1, "5 ", "zero division"},
		{"debug", "", []string{"-debug", writeFile(t, "dbg.bf", "10/@")}, 1, "", "Stack: [1 0]"},
		{"limits", "", []string{"-config", limits, writeFile(t, "loop.bf", ">")}, 1, "", "step limit reached"},
		{"save", "", []string{"-o", saved, writeFile(t, "self.bf", "88*09p7.3.@")}, 0, "7 ", ""},
		{"trace", "", []string{"-trace", trace, writeFile(t, "trace.bf", "1@")}, 0, "", ""},
		{"missing", "", []string{filepath.Join(dir, "missing.bf")}, 1, "", "load failed"},
		{"bad asm", "", []string{"-asm", writeFile(t, "bad.fa", "foo")}, 1, "", "unknown instruction foo"},
		{"usage", "", nil, 2, "", "usage"},
		{"bad flag", "", []string{"-bogus", hello}, 2, "", "bogus"},
		{"help", "", []string{"-h"}, 0, "", "-max-steps"},
		{"huge grid", "", []string{"-width", "100000", "-height", "100000", hello}, 1, "", "invalid grid size 100000x100000"},
	}
	for _, c := range cases {
		code, out, errs := runCmd(t, c.stdin, c.args...)
		if code != c.code {
			t.Errorf("%s: expected exit code %d, got %d: %s", c.name, c.code, code, errs)
		}
		if out != c.out {
			t.Errorf("%s: expected output %q, got %q", c.name, c.out, out)
		}
		if c.err != "" && !strings.Contains(errs, c.err) {
			t.Errorf("%s: %q not found in %q", c.name, c.err, errs)
		}
	}

	b, err := os.ReadFile(saved)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "88*09p7.3@@\n" {
		t.Errorf("saved grid: got %q", b)
	}
	b, err = os.ReadFile(trace)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"msg":"step"`, `"op":"1"`, `"msg":"halt"`} {
		if !bytes.Contains(b, []byte(s)) {
			t.Errorf("%s not found in trace:\n%s", s, b)
		}
	}
}
