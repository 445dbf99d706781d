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

import "unicode/utf8"

// Opcode is a decoded instruction.
type Opcode uint8

// Opcodes. OpPush0 through OpPush9 are contiguous.
const (
	OpUnknown Opcode = iota
	OpBlank
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNot
	OpGreater
	OpRight
	OpLeft
	OpUp
	OpDown
	OpRandom
	OpBranchH
	OpBranchV
	OpString
	OpDup
	OpSwap
	OpDrop
	OpPrintInt
	OpPrintChar
	OpBridge
	OpGet
	OpPut
	OpReadInt
	OpReadChar
	OpHalt
	OpPush0
	OpPush1
	OpPush2
	OpPush3
	OpPush4
	OpPush5
	OpPush6
	OpPush7
	OpPush8
	OpPush9

	opCount
)

var opcodes = [opCount]struct {
	r    rune
	name string
}{
	OpUnknown:   {utf8.RuneError, "unknown"},
	OpBlank:     {' ', "nop"},
	OpAdd:       {'+', "add"},
	OpSub:       {'-', "sub"},
	OpMul:       {'*', "mul"},
	OpDiv:       {'/', "div"},
	OpMod:       {'%', "mod"},
	OpNot:       {'!', "not"},
	OpGreater:   {'`', "gt"},
	OpRight:     {'>', "right"},
	OpLeft:      {'<', "left"},
	OpUp:        {'^', "up"},
	OpDown:      {'v', "down"},
	OpRandom:    {'?', "rand"},
	OpBranchH:   {'_', "hif"},
	OpBranchV:   {'|', "vif"},
	OpString:    {'"', "str"},
	OpDup:       {':', "dup"},
	OpSwap:      {'\\', "swap"},
	OpDrop:      {'$', "drop"},
	OpPrintInt:  {'.', "print"},
	OpPrintChar: {',', "emit"},
	OpBridge:    {'#', "bridge"},
	OpGet:       {'g', "get"},
	OpPut:       {'p', "put"},
	OpReadInt:   {'&', "readint"},
	OpReadChar:  {'~', "readchar"},
	OpHalt:      {'@', "halt"},
	OpPush0:     {'0', "0"},
	OpPush1:     {'1', "1"},
	OpPush2:     {'2', "2"},
	OpPush3:     {'3', "3"},
	OpPush4:     {'4', "4"},
	OpPush5:     {'5', "5"},
	OpPush6:     {'6', "6"},
	OpPush7:     {'7', "7"},
	OpPush8:     {'8', "8"},
	OpPush9:     {'9', "9"},
}

// all instruction characters are ASCII.
var opcodeIndex [utf8.RuneSelf]Opcode

var mnemonicIndex = make(map[string]Opcode)

func init() {
	for op := OpBlank; op < opCount; op++ {
		opcodeIndex[opcodes[op].r] = op
		mnemonicIndex[opcodes[op].name] = op
	}
}

// Decode returns the Opcode for the instruction character r. Characters that
// are not instructions decode to OpUnknown.
func Decode(r rune) Opcode {
	if r < 0 || r >= utf8.RuneSelf {
		return OpUnknown
	}
	return opcodeIndex[r]
}

// Rune returns the instruction character for op. For all opcodes but
// OpUnknown, Decode(op.Rune()) == op. OpUnknown returns utf8.RuneError.
func (op Opcode) Rune() rune {
	if op >= opCount {
		return utf8.RuneError
	}
	return opcodes[op].r
}

// String returns the mnemonic of op.
func (op Opcode) String() string {
	if op >= opCount {
		return "unknown"
	}
	return opcodes[op].name
}

// MarshalText implements encoding.TextMarshaler.
func (op Opcode) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Digit returns the value pushed by OpPush0 through OpPush9 and true. It
// returns 0, false for any other opcode.
func (op Opcode) Digit() (Cell, bool) {
	if op < OpPush0 || op > OpPush9 {
		return 0, false
	}
	return Cell(op - OpPush0), true
}

// Lookup returns the opcode whose mnemonic is name.
func Lookup(name string) (Opcode, bool) {
	op, ok := mnemonicIndex[name]
	return op, ok
}
