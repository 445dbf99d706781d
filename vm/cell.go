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
	"unicode/utf8"
)

// Cell is the raw type stored in a grid location and on the operand stack.
// Arithmetic on cells wraps around.
type Cell int32

// Rune returns the character form of c. It returns utf8.RuneError and false if
// c is not a valid Unicode code point.
func (c Cell) Rune() (rune, bool) {
	r := rune(c)
	if !utf8.ValidRune(r) {
		return utf8.RuneError, false
	}
	return r, true
}

// Op decodes c into an Opcode. Values that are not valid characters decode to
// OpUnknown.
func (c Cell) Op() Opcode {
	r, ok := c.Rune()
	if !ok {
		return OpUnknown
	}
	return Decode(r)
}
