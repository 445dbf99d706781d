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

package vm

import (
	"strconv"
)

// Errno describes the reason why execution stopped.
type Errno int

// Error numbers.
const (
	ZeroDivision   = Errno(iota) // division or modulo by zero
	IllegalAddress               // put outside of the grid
	EOF                          // input exhausted
	IOError                      // read or write error
	StepLimit                    // MaxSteps reached
	OutputLimit                  // MaxOutput reached
	Canceled                     // context canceled
)

var strError = [...]string{
	"zero division",
	"illegal address",
	"input exhausted",
	"I/O error",
	"step limit reached",
	"output limit reached",
	"canceled",
}

func (e Errno) Error() string {
	if int(e) < len(strError) {
		return strError[e]
	}
	return "errno " + strconv.Itoa(int(e))
}

// Error describes the cause and the context of an execution error. The
// instruction pointer of the faulting Instance is left on the instruction that
// triggered the error.
type Error struct {
	Errno Errno  // nature of the error
	Err   error  // underlying error, if any
	PC    Pos    // instruction pointer position
	Dir   Dir    // instruction pointer direction
	Op    Opcode // opcode at PC
	Stack []Cell // copy of the operand stack
}

func (e *Error) Error() string {
	msg := "funge: " + e.Errno.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg + " at " + e.PC.String() + " " + e.Op.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Aborted returns true if execution was stopped by the host rather than by a
// program fault: step or output limit reached, or context canceled.
func (e *Error) Aborted() bool {
	switch e.Errno {
	case StepLimit, OutputLimit, Canceled:
		return true
	}
	return false
}

func (i *Instance) newErrorFull(errno Errno, err error) error {
	return &Error{
		Errno: errno,
		Err:   err,
		PC:    i.PC,
		Dir:   i.Dir,
		Op:    i.Space.Read(i.PC).Op(),
		Stack: append([]Cell(nil), i.stack...),
	}
}

func (i *Instance) newError(errno Errno) error {
	return i.newErrorFull(errno, nil)
}
