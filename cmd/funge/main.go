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
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/db47h/funge/asm"
	"github.com/db47h/funge/lang/befunge"
	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

// inputFile is a buffered input file that gets closed by the VM once
// exhausted.
type inputFile struct {
	*bufio.Reader
	f *os.File
}

func newInputFile(f *os.File) inputFile {
	return inputFile{bufio.NewReader(f), f}
}

func (r inputFile) Close() error { return r.f.Close() }

func loadSource(fileName string, stdin io.Reader) (string, error) {
	if fileName != "-" {
		return befunge.Load(fileName)
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "load failed")
	}
	return string(b), nil
}

func atExit(i *vm.Instance, err error, debug bool, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if !debug {
		fmt.Fprintf(stderr, "\n%v\n", err)
		return 1
	}
	fmt.Fprintf(stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(stderr, "PC: %v (%v), Dir: %v, Stack: %v\n", i.PC, i.Space.Read(i.PC).Op(), i.Dir, i.Data())
	}
	return 1
}

// run runs the funge command with the given arguments and returns the process
// exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	var (
		err error
		i   *vm.Instance
	)
	cfg, f, rest, err := parseArgs(args, stderr)
	switch {
	case err == flag.ErrHelp:
		return 0
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 2
	case len(rest) != 1:
		fmt.Fprintln(stderr, "usage: funge [flags] program")
		return 2
	}

	out := bufio.NewWriter(stdout)
	// flush output, catch and log errors
	defer func() {
		if ferr := out.Flush(); err == nil && ferr != nil {
			err = errors.Wrap(ferr, "flush failed")
		}
		code = atExit(i, err, f.debug, stderr)
	}()

	src, err := loadSource(rest[0], stdin)
	if err != nil {
		return
	}
	if rest[0] == "-" {
		stdin = strings.NewReader("")
	}
	if f.assemble {
		if src, err = asm.Assemble(rest[0], strings.NewReader(src)); err != nil {
			return
		}
	}

	logger, closeLog, err := newLogger(&cfg, stderr)
	if err != nil {
		return
	}
	defer func() {
		if cerr := closeLog(); err == nil {
			err = cerr
		}
	}()

	opts, err := cfg.options(src)
	if err != nil {
		return
	}

	// try to switch the input terminal to raw mode.
	input, ioTearDownFn := setupIO(stdin, cfg.Raw)
	if ioTearDownFn != nil {
		defer ioTearDownFn()
	}
	if _, ok := input.(*eotReader); !ok {
		input = bufio.NewReader(input)
	}
	opts = append(opts,
		vm.Input(input),
		vm.Output(out),
		vm.Logger(logger),
		vm.Trace(cfg.TraceFile != ""))

	// append -with files to input stack in reverse order so that they load
	// in order of appearance on the command line.
	for n := len(f.with) - 1; n >= 0; n-- {
		var fw *os.File
		fw, err = os.Open(f.with[n])
		if err != nil {
			return
		}
		defer fw.Close()
		opts = append(opts, vm.Input(newInputFile(fw)))
	}

	if i, err = vm.New(src, opts...); err != nil {
		return
	}
	if f.disasm {
		err = asm.DisassembleAll(i.Space, out)
		return
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = i.Run(ctx)

	if err == nil && f.outFileName != "" {
		err = befunge.SaveGrid(f.outFileName, i.Space)
	}
	if err == nil && cfg.Dump {
		err = befunge.DumpVM(i, out)
	}
	return
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
