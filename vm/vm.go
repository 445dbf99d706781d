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
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Instance represents an interpreter instance. An Instance must not be used
// concurrently from multiple goroutines.
type Instance struct {
	PC         Pos    // Instruction pointer position
	Dir        Dir    // Instruction pointer direction
	Space      *Space // Program grid
	width      int
	height     int
	stack      []Cell
	stringMode bool
	halted     bool
	insCount   int64
	input      io.RuneReader
	pending    []rune
	output     runeWriter
	outCount   int64
	choose     func(n int) int
	addressing AddrMode
	divZero    Policy
	putBounds  Policy
	onEOF      Policy
	maxSteps   int64
	maxOutput  int64
	logger     *slog.Logger
	trace      bool
}

// Option interface
type Option func(*Instance) error

// Policy selects how an Instance handles a policy-determined condition.
type Policy int

// Policies. Not every policy applies to every condition; see DivByZero,
// PutBounds and OnEOF.
const (
	Fault    Policy = iota // stop with an *Error
	Zero                   // push 0
	MinusOne               // push -1
	Wrap                   // wrap coordinates around the grid
	Ignore                 // do nothing
)

var policyNames = [...]string{"fault", "zero", "minusone", "wrap", "ignore"}

func (p Policy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "invalid"
}

// ParsePolicy returns the Policy named s.
func ParsePolicy(s string) (Policy, error) {
	for k, n := range policyNames {
		if n == s {
			return Policy(k), nil
		}
	}
	return 0, errors.Errorf("unknown policy %q", s)
}

func checkPolicy(what string, p Policy, allowed ...Policy) error {
	for _, a := range allowed {
		if p == a {
			return nil
		}
	}
	return errors.Errorf("%s: unsupported policy %v", what, p)
}

// AddrMode selects how get and put map their coordinates to the grid.
type AddrMode int

const (
	// RowCol: the first coordinate pushed selects the row and the second
	// one the column. This is the default.
	RowCol AddrMode = iota
	// ColRow: the first coordinate pushed selects the column and the
	// second one the row, like in classic Befunge-93.
	ColRow
)

// MaxCells is the largest number of cells a grid can hold.
const MaxCells = 1 << 24

// Size sets the grid dimensions. The default is 80x25. It can only be used
// with New. width*height must not exceed MaxCells.
func Size(width, height int) Option {
	return func(i *Instance) error {
		if i.Space != nil {
			return errors.New("grid size cannot be changed after creation")
		}
		if width < 1 || height < 1 || width > MaxCells/height {
			return errors.Errorf("invalid grid size %dx%d", width, height)
		}
		i.width, i.height = width, height
		return nil
	}
}

// Input pushes the given Reader on top of the input stack.
func Input(r io.Reader) Option {
	return func(i *Instance) error { i.PushInput(r); return nil }
}

// Output sets the output Writer. If w does not implement WriteRune, it will be
// wrapped. If w implements Flush() error, it is flushed when Run returns.
func Output(w io.Writer) Option {
	return func(i *Instance) error {
		i.output = newWriter(w)
		return nil
	}
}

// Random sets the function used by the '?' instruction. choose(n) must return
// a value in [0, n). The default uses math/rand/v2.
func Random(choose func(n int) int) Option {
	return func(i *Instance) error {
		if choose == nil {
			return errors.New("nil random source")
		}
		i.choose = choose
		return nil
	}
}

// Addressing sets the coordinate convention used by get and put.
func Addressing(m AddrMode) Option {
	return func(i *Instance) error {
		if m != RowCol && m != ColRow {
			return errors.Errorf("invalid addressing mode %d", m)
		}
		i.addressing = m
		return nil
	}
}

// DivByZero sets the division and modulo by zero policy: Fault (default) or
// Zero.
func DivByZero(p Policy) Option {
	return func(i *Instance) error {
		if err := checkPolicy("division by zero", p, Fault, Zero); err != nil {
			return err
		}
		i.divZero = p
		return nil
	}
}

// PutBounds sets the policy for put instructions outside of the grid: Fault
// (default), Wrap or Ignore.
func PutBounds(p Policy) Option {
	return func(i *Instance) error {
		if err := checkPolicy("put bounds", p, Fault, Wrap, Ignore); err != nil {
			return err
		}
		i.putBounds = p
		return nil
	}
}

// OnEOF sets the policy for input instructions when input is exhausted: Zero
// (default), MinusOne or Fault.
func OnEOF(p Policy) Option {
	return func(i *Instance) error {
		if err := checkPolicy("end of input", p, Zero, MinusOne, Fault); err != nil {
			return err
		}
		i.onEOF = p
		return nil
	}
}

// MaxSteps limits the number of steps executed by Run. 0 means no limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step limit %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// MaxOutput limits the number of bytes written to the output. 0 means no
// limit.
func MaxOutput(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid output limit %d", n)
		}
		i.maxOutput = n
		return nil
	}
}

// Logger sets the logger. Run start, halt and faults are logged at debug
// level. The default discards all records.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		i.logger = l
		return nil
	}
}

// Trace enables logging of every step at debug level.
func Trace(enable bool) Option {
	return func(i *Instance) error { i.trace = enable; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Instance and loads src into its grid. See NewSpace for
// details on how src is laid out.
//
// Options will be set by calling SetOptions.
func New(src string, opts ...Option) (*Instance, error) {
	i := &Instance{
		width:     DefaultWidth,
		height:    DefaultHeight,
		choose:    rand.IntN,
		divZero:   Fault,
		putBounds: Fault,
		onEOF:     Zero,
		logger:    slog.New(slog.DiscardHandler),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	i.Space = NewSpace(src, i.width, i.height)
	return i, nil
}

// Data returns the operand stack, bottom first. Note that value changes will
// be reflected in the instance's stack, but re-slicing will not affect it. To
// add/remove values on the stack, use the Push and Pop functions.
func (i *Instance) Data() []Cell {
	return i.stack
}

// Depth returns the stack depth.
func (i *Instance) Depth() int {
	return len(i.stack)
}

// Push pushes the argument on top of the stack.
func (i *Instance) Push(v Cell) {
	i.stack = append(i.stack, v)
}

// Pop pops the value on top of the stack and returns it. Popping from an empty
// stack returns 0.
func (i *Instance) Pop() Cell {
	n := len(i.stack) - 1
	if n < 0 {
		return 0
	}
	v := i.stack[n]
	i.stack = i.stack[:n]
	return v
}

// Halted returns true once the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// StringMode returns true if the instance is in string mode.
func (i *Instance) StringMode() bool {
	return i.stringMode
}

// InstructionCount returns the number of steps executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
