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

// Package vm implements an interpreter for Befunge-like, grid addressed stack
// languages.
//
// A program is loaded once into a fixed size two dimensional grid of Cells
// (the program Space). The instruction pointer starts at the top left corner,
// moving right, and wraps around both axes independently. Each step reads the
// cell under the instruction pointer, decodes it into an Opcode and executes
// it against the operand stack. The get and put instructions let a running
// program read and write its own grid, so a program can modify itself. A one
// dimensional tape program is simply a grid of height 1.
//
// Popping from an empty stack never fails and yields 0, unknown characters
// decode to no-ops and out of range get instructions push 0. Division by
// zero, out of range put instructions and input exhaustion are handled
// according to a configurable Policy. See the DivByZero, PutBounds and OnEOF
// options.
//
// Communication with the host program goes through io.Reader and io.Writer
// values set with the Input and Output options. The source of randomness used
// by the '?' instruction can be replaced with the Random option, which comes
// in handy for deterministic tests.
//
// Errors returned by Run and Step are of type *Error, except for recovered
// runtime panics. Errors caused by host imposed limits (MaxSteps, MaxOutput or
// context cancellation) can be told apart from program faults with the
// Aborted method.
package vm
