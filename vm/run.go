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
	"context"
	"strings"

	"github.com/pkg/errors"
)

// peek returns the value on top of the stack without removing it.
func (i *Instance) peek() Cell {
	if n := len(i.stack); n > 0 {
		return i.stack[n-1]
	}
	return 0
}

// coords maps the x and y operands of get and put to a grid row and column.
func (i *Instance) coords(x, y Cell) (row, col Cell) {
	if i.addressing == ColRow {
		return y, x
	}
	return x, y
}

func (i *Instance) readChar() (Cell, error) {
	r, err := i.readRune()
	return Cell(r), err
}

// Step executes a single instruction. Calling Step on a halted instance is a
// no-op.
//
// If an error occurs, the instruction pointer and the stack are left as they
// were before the step.
func (i *Instance) Step() error {
	if i.halted {
		return nil
	}
	c := i.Space.Read(i.PC)
	if i.stringMode {
		if c == '"' {
			i.stringMode = false
		} else {
			i.Push(c)
		}
		i.PC = i.Space.Next(i.PC, i.Dir)
		i.insCount++
		return nil
	}

	op := c.Op()
	if i.trace {
		i.logger.Debug("step", "pc", i.PC, "dir", i.Dir, "op", op, "depth", len(i.stack))
	}
	switch op {
	case OpAdd:
		a, b := i.Pop(), i.Pop()
		i.Push(b + a)
	case OpSub:
		a, b := i.Pop(), i.Pop()
		i.Push(b - a)
	case OpMul:
		a, b := i.Pop(), i.Pop()
		i.Push(b * a)
	case OpDiv, OpMod:
		a, b := i.Pop(), i.Pop()
		switch {
		case a == 0 && i.divZero == Fault:
			i.Push(b)
			i.Push(a)
			return i.newError(ZeroDivision)
		case a == 0:
			i.Push(0)
		case op == OpDiv:
			i.Push(b / a)
		default:
			i.Push(b % a)
		}
	case OpNot:
		if i.Pop() == 0 {
			i.Push(1)
		} else {
			i.Push(0)
		}
	case OpGreater:
		a, b := i.Pop(), i.Pop()
		if b > a {
			i.Push(1)
		} else {
			i.Push(0)
		}
	case OpRight:
		i.Dir = Right
	case OpLeft:
		i.Dir = Left
	case OpUp:
		i.Dir = Up
	case OpDown:
		i.Dir = Down
	case OpRandom:
		i.Dir = Dir(uint(i.choose(4)) % 4)
	case OpBranchH:
		if i.Pop() == 0 {
			i.Dir = Right
		} else {
			i.Dir = Left
		}
	case OpBranchV:
		if i.Pop() == 0 {
			i.Dir = Down
		} else {
			i.Dir = Up
		}
	case OpString:
		i.stringMode = true
	case OpDup:
		v := i.Pop()
		i.Push(v)
		i.Push(v)
	case OpSwap:
		a, b := i.Pop(), i.Pop()
		i.Push(a)
		i.Push(b)
	case OpDrop:
		i.Pop()
	case OpPrintInt:
		if err := i.emitInt(i.peek()); err != nil {
			return err
		}
		i.Pop()
	case OpPrintChar:
		// NUL is not printed
		if v := i.peek(); v != 0 {
			r, _ := v.Rune()
			if err := i.emitRune(r); err != nil {
				return err
			}
		}
		i.Pop()
	case OpBridge:
		i.PC = i.Space.Next(i.PC, i.Dir)
	case OpGet:
		y, x := i.Pop(), i.Pop()
		row, col := i.coords(x, y)
		if i.Space.Contains(row, col) {
			i.Push(i.Space.Read(Pos{int(row), int(col)}))
		} else {
			i.Push(0)
		}
	case OpPut:
		y, x, v := i.Pop(), i.Pop(), i.Pop()
		row, col := i.coords(x, y)
		switch {
		case i.Space.Contains(row, col):
			i.Space.Write(Pos{int(row), int(col)}, v)
		case i.putBounds == Wrap:
			i.Space.Write(i.Space.Wrap(row, col), v)
		case i.putBounds == Fault:
			i.Push(v)
			i.Push(x)
			i.Push(y)
			return i.newError(IllegalAddress)
		}
	case OpReadInt:
		if err := i.readInput(i.readInt); err != nil {
			return err
		}
	case OpReadChar:
		if err := i.readInput(i.readChar); err != nil {
			return err
		}
	case OpHalt:
		i.halted = true
		i.insCount++
		return nil
	default:
		if v, ok := op.Digit(); ok {
			i.Push(v)
		}
		// OpBlank and OpUnknown are no-ops
	}
	i.PC = i.Space.Next(i.PC, i.Dir)
	i.insCount++
	return nil
}

// Run executes the program until it halts or an error occurs. The context is
// checked between steps; once it is done, Run returns an *Error with Errno
// Canceled. Input instructions block until input is available.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. Output written so far is flushed in all cases.
func (i *Instance) Run(ctx context.Context) (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%v, stack %d", i.PC, len(i.stack))
			default:
				panic(e)
			}
		}
		if ferr := i.flush(); err == nil && ferr != nil {
			err = i.newErrorFull(IOError, ferr)
		}
		if err != nil {
			i.logger.DebugContext(ctx, "fault", "error", err, "steps", i.insCount)
		} else {
			i.logger.DebugContext(ctx, "halt", "pc", i.PC, "steps", i.insCount)
		}
	}()
	i.logger.DebugContext(ctx, "run", "width", i.Space.Width(), "height", i.Space.Height())
	done := ctx.Done()
	for !i.halted {
		if done != nil {
			select {
			case <-done:
				return i.newErrorFull(Canceled, ctx.Err())
			default:
			}
		}
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return i.newError(StepLimit)
		}
		if err = i.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Exec loads src into a new Instance, runs it and returns everything the
// program printed. If an error is returned, the output produced up to the
// error is returned as well. Any Output option in opts is overridden.
func Exec(ctx context.Context, src string, opts ...Option) (string, error) {
	var b strings.Builder
	i, err := New(src, append(opts[:len(opts):len(opts)], Output(&b))...)
	if err != nil {
		return "", err
	}
	err = i.Run(ctx)
	return b.String(), err
}
