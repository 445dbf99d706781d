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

package vm_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/funge/vm"
)

type C []vm.Cell

func setup(code string, stack C, opts ...vm.Option) *vm.Instance {
	i, err := vm.New(code, opts...)
	if err != nil {
		panic(err)
	}
	for _, v := range stack {
		i.Push(v)
	}
	return i
}

func check(t *testing.T, testName string, i *vm.Instance, pc vm.Pos, stack C) bool {
	err := i.Run(context.Background())
	if err != nil {
		t.Errorf("%s: %+v", testName, err)
		return false
	}
	if pc != i.PC {
		t.Errorf("%v", fmt.Errorf("%s: Bad PC %v != %v", testName, i.PC, pc))
		return false
	}
	stk := i.Data()
	diff := len(stk) != len(stack)
	if !diff {
		for i := range stack {
			if stack[i] != stk[i] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%v", fmt.Errorf("%s: Stack error: expected %d, got %d", testName, stack, stk))
		return false
	}
	return true
}

// pc is left on the halt instruction, which is the last character of code
// unless stated otherwise.
var tests = [...]struct {
	name  string
	code  string
	stack C
	data  C
	pc    vm.Pos
}{
	{"nop", " @", nil, nil, vm.Pos{0, 1}},
	{"unknown", "xyz@", nil, nil, vm.Pos{0, 3}},
	{"digits", "0123456789@", nil, C{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, vm.Pos{0, 10}},
	{"+", "23+@", nil, C{5}, vm.Pos{0, 3}},
	{"+ underflow", "+@", nil, C{0}, vm.Pos{0, 1}},
	{"+ wrap", "1+@", C{2147483647}, C{-2147483648}, vm.Pos{0, 2}},
	{"-", "52-25-@", nil, C{3, -3}, vm.Pos{0, 6}},
	{"*", "67*@", nil, C{42}, vm.Pos{0, 3}},
	{"/", "72/@", nil, C{3}, vm.Pos{0, 3}},
	{"/ negative", "07-2/@", nil, C{-3}, vm.Pos{0, 5}},
	{"/ overflow", "/@", C{-2147483648, -1}, C{-2147483648}, vm.Pos{0, 1}},
	{"%", "72%@", nil, C{1}, vm.Pos{0, 3}},
	{"% negative", "07-2%@", nil, C{-1}, vm.Pos{0, 5}},
	{"!", "0!5!@", nil, C{1, 0}, vm.Pos{0, 4}},
	{"`", "21`12`22`@", nil, C{1, 0, 0}, vm.Pos{0, 9}},
	{":", "5:@", nil, C{5, 5}, vm.Pos{0, 2}},
	{": empty", ":@", nil, C{0, 0}, vm.Pos{0, 1}},
	{"\\", "12\\@", nil, C{2, 1}, vm.Pos{0, 3}},
	{"\\ underflow", "1\\@", nil, C{1, 0}, vm.Pos{0, 2}},
	{"$", "12$@", nil, C{1}, vm.Pos{0, 3}},
	{"$ empty", "$@", nil, nil, vm.Pos{0, 1}},
	{"string", `"ab"@`, nil, C{'a', 'b'}, vm.Pos{0, 4}},
	{"string ops", `"1+@"@`, nil, C{'1', '+', '@'}, vm.Pos{0, 5}},
	{"bridge", "1#2 3@", nil, C{1, 3}, vm.Pos{0, 5}},
	{"bridge halt", "#@5@", nil, C{5}, vm.Pos{0, 3}},
	{"_ zero", "0_@", nil, nil, vm.Pos{0, 2}},
	{"_ non zero", "1_@", nil, C{1}, vm.Pos{0, 2}},
	{"| zero", "0|\n @", nil, nil, vm.Pos{1, 1}},
	{"| non zero", "1|" + strings.Repeat("\n", 24) + " @", nil, nil, vm.Pos{24, 1}},
	{"get", "02>g@", nil, C{'>'}, vm.Pos{0, 4}},
	{"get out of range", "099*g@", nil, C{0}, vm.Pos{0, 5}},
	{"get negative", "01-0g@", nil, C{0}, vm.Pos{0, 5}},
	{"put", "88*06p5@", nil, nil, vm.Pos{0, 6}},
	{"put blank", "98*08p@", nil, nil, vm.Pos{0, 6}},
}

func TestCore(t *testing.T) {
	for _, test := range tests {
		i := setup(test.code, test.stack)
		check(t, test.name, i, test.pc, test.data)
	}
}
