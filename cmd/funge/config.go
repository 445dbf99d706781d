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
	"flag"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/funge/lang/befunge"
	"github.com/db47h/funge/vm"
	"github.com/pkg/errors"
)

// config holds the interpreter settings. It is loaded from a TOML file and
// command line flags override it.
type config struct {
	Dialect    string `toml:"dialect"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Addressing string `toml:"addressing"`
	DivByZero  string `toml:"div_by_zero"`
	PutBounds  string `toml:"put_bounds"`
	OnEOF      string `toml:"on_eof"`
	MaxSteps   int64  `toml:"max_steps"`
	MaxOutput  int64  `toml:"max_output"`
	LogLevel   string `toml:"log_level"`
	TraceFile  string `toml:"trace_file"`
	Raw        bool   `toml:"raw"`
	Dump       bool   `toml:"dump"`
}

func defaultConfig() config {
	return config{
		Dialect:  befunge.Default,
		LogLevel: "warn",
		Raw:      true,
	}
}

func loadConfig(fileName string, cfg *config) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Wrap(err, "cannot read config")
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return errors.Wrapf(err, "parse error in %s", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return errors.Errorf("%s: unknown key %q", fileName, u[0].String())
	}
	return nil
}

func parsePolicy(key, s string, opt func(vm.Policy) vm.Option, opts []vm.Option) ([]vm.Option, error) {
	if s == "" {
		return opts, nil
	}
	p, err := vm.ParsePolicy(s)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return append(opts, opt(p)), nil
}

// options returns the vm options for running src. Settings left to their zero
// value keep the dialect's defaults.
func (c *config) options(src string) ([]vm.Option, error) {
	opts, err := befunge.Dialect(c.Dialect, src)
	if err != nil {
		return nil, err
	}
	if c.Width > 0 || c.Height > 0 {
		w, h := c.Width, c.Height
		if w <= 0 {
			w = vm.DefaultWidth
		}
		if h <= 0 {
			h = vm.DefaultHeight
		}
		opts = append(opts, vm.Size(w, h))
	}
	switch strings.ToLower(c.Addressing) {
	case "":
	case "rowcol":
		opts = append(opts, vm.Addressing(vm.RowCol))
	case "colrow":
		opts = append(opts, vm.Addressing(vm.ColRow))
	default:
		return nil, errors.Errorf("addressing: unknown mode %q", c.Addressing)
	}
	if opts, err = parsePolicy("div_by_zero", c.DivByZero, vm.DivByZero, opts); err != nil {
		return nil, err
	}
	if opts, err = parsePolicy("put_bounds", c.PutBounds, vm.PutBounds, opts); err != nil {
		return nil, err
	}
	if opts, err = parsePolicy("on_eof", c.OnEOF, vm.OnEOF, opts); err != nil {
		return nil, err
	}
	if c.MaxSteps > 0 {
		opts = append(opts, vm.MaxSteps(c.MaxSteps))
	}
	if c.MaxOutput > 0 {
		opts = append(opts, vm.MaxOutput(c.MaxOutput))
	}
	return opts, nil
}

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

// cliFlags holds the flags that have no configuration file counterpart.
type cliFlags struct {
	configFile  string
	debug       bool
	noRaw       bool
	assemble    bool
	disasm      bool
	outFileName string
	with        fileList
}

func newFlagSet(cfg *config, f *cliFlags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("funge", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&f.configFile, "config", "", "load settings from TOML file `filename`")
	fs.StringVar(&cfg.Dialect, "dialect", cfg.Dialect, "language `dialect`: default, b93 or tape")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells (default 80)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells (default 25)")
	fs.StringVar(&cfg.Addressing, "addressing", cfg.Addressing, "get and put coordinate `order`: rowcol or colrow")
	fs.StringVar(&cfg.DivByZero, "div", cfg.DivByZero, "division by zero `policy`: fault or zero")
	fs.StringVar(&cfg.PutBounds, "put", cfg.PutBounds, "out of bounds put `policy`: fault, wrap or ignore")
	fs.StringVar(&cfg.OnEOF, "eof", cfg.OnEOF, "end of input `policy`: zero, minusone or fault")
	fs.Int64Var(&cfg.MaxSteps, "max-steps", cfg.MaxSteps, "stop after `n` steps")
	fs.Int64Var(&cfg.MaxOutput, "max-output", cfg.MaxOutput, "stop after writing `n` bytes")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log `level`: debug, info, warn or error")
	fs.StringVar(&cfg.TraceFile, "trace", cfg.TraceFile, "write a JSON trace of every step to `filename`")
	fs.BoolVar(&cfg.Dump, "dump", cfg.Dump, "dump stack and grid upon exit")
	fs.BoolVar(&f.noRaw, "noraw", false, "disable raw terminal IO")
	fs.BoolVar(&f.debug, "debug", false, "enable debug diagnostics")
	fs.BoolVar(&f.assemble, "asm", false, "assemble the program from an assembler listing")
	fs.BoolVar(&f.disasm, "disasm", false, "print a disassembly of the program instead of running it")
	fs.StringVar(&f.outFileName, "o", "", "save the grid to `filename` upon exit")
	fs.Var(&f.with, "with", "Add `filename` to the input list (can be specified multiple times)")
	return fs
}

// parseArgs returns the settings for the given command line: defaults, then
// the configuration file given with -config, then the other flags.
func parseArgs(args []string, output io.Writer) (cfg config, f cliFlags, rest []string, err error) {
	// first pass to find the configuration file
	cfg = defaultConfig()
	if newFlagSet(&cfg, &f, io.Discard).Parse(args) == nil && f.configFile != "" {
		cfg = defaultConfig()
		if err = loadConfig(f.configFile, &cfg); err != nil {
			return cfg, f, nil, err
		}
	} else {
		cfg = defaultConfig()
	}
	f = cliFlags{}
	fs := newFlagSet(&cfg, &f, output)
	if err = fs.Parse(args); err != nil {
		return cfg, f, nil, err
	}
	if f.noRaw {
		cfg.Raw = false
	}
	return cfg, f, fs.Args(), nil
}
