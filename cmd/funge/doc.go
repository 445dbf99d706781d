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

// The funge command line tool runs two-dimensional stack based programs with
// the package github.com/db47h/funge/vm.
//
// Usage:
//
//	funge [flags] program
//
// program is the name of the program source file, or "-" to read the source
// from stdin. Flags:
//
//	-addressing order
//		  get and put coordinate order: rowcol or colrow
//	-asm
//		  assemble the program from an assembler listing
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-dialect dialect
//		  language dialect: default, b93 or tape (default "default")
//	-disasm
//		  print a disassembly of the program instead of running it
//	-div policy
//		  division by zero policy: fault or zero
//	-dump
//		  dump stack and grid upon exit
//	-eof policy
//		  end of input policy: zero, minusone or fault
//	-height int
//		  grid height in cells (default 25)
//	-log-level level
//		  log level: debug, info, warn or error (default "warn")
//	-max-output n
//		  stop after writing n bytes
//	-max-steps n
//		  stop after n steps
//	-noraw
//		  disable raw terminal IO
//	-o filename
//		  save the grid to filename upon exit
//	-put policy
//		  out of bounds put policy: fault, wrap or ignore
//	-trace filename
//		  write a JSON trace of every step to filename
//	-width int
//		  grid width in cells (default 80)
//	-with filename
//		  Add filename to the input list (can be specified multiple times)
//
// -config: settings are read from a TOML file. Flags given on the command line
// take precedence over the file. All keys are optional:
//
//	dialect = "b93"
//	width = 80
//	height = 25
//	addressing = "colrow"
//	div_by_zero = "zero"
//	put_bounds = "ignore"
//	on_eof = "minusone"
//	max_steps = 1000000
//	max_output = 65536
//	log_level = "info"
//	trace_file = "trace.json"
//	raw = true
//	dump = false
//
// -dialect: "b93" selects classic Befunge-93 behavior: column, row order for
// get and put, division by zero yields 0, out of bounds put is ignored and -1
// is read at end of input. "tape" runs the first line of the program as a
// single row grid. Individual settings override the dialect.
//
// -debug: will print a full stacktrace and the state of the instance should
// the program fail.
//
// -dump: dumps the stack, instruction pointer and grid to stdout. Sections are
// separated by 0x1C and 0x1D characters.
//
// -noraw: upon startup, funge switches the terminal to raw mode unless stdin
// has been redirected, so that characters are read as they are typed. Press
// CTRL-D to signal the end of input. This flag disables this behavior.
//
// -with: the specified file is fed to the program as input before stdin. If
// specified multiple times, files will be fed in order of appearance on the
// command line.
//
// -trace: each step is logged as a JSON record with the position, direction
// and opcode of the instruction and the stack depth.
//
// An interrupt signal stops the program between two steps.
package main
