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

package asm

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"
	"unicode/utf8"

	"github.com/db47h/funge/vm"
)

const maxErrors = 10

func isIdentRune(ch rune, i int) bool {
	if ch == '"' || (i == 0 && ch == '\'') {
		return false
	}
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

// ErrAsm wraps the errors returned by Assemble.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k, err := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

type parser struct {
	b          strings.Builder
	stringMode bool
	s          scanner.Scanner
	errs       ErrAsm
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) >= maxErrors {
		return
	}
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, struct {
		Pos scanner.Position
		Msg string
	}{pos, msg})
}

func (p *parser) scanError(msg string) {
	p.error(p.s.Position, msg)
}

// writeOp writes the character for op outside of string mode.
func (p *parser) writeOp(op vm.Opcode) {
	if p.stringMode {
		p.b.WriteRune(vm.OpString.Rune())
		p.stringMode = false
	}
	p.b.WriteRune(op.Rune())
}

// writeInt writes the shortest sequence of digits, multiplications and
// additions we can easily find that pushes v.
func (p *parser) writeInt(v int64) {
	switch {
	case v < 0:
		p.writeOp(vm.OpPush0)
		p.writeInt(-v)
		p.writeOp(vm.OpSub)
	case v <= 9:
		p.writeOp(vm.OpPush0 + vm.Opcode(v))
	default:
		p.writeInt(v / 9)
		p.writeOp(vm.OpPush9)
		p.writeOp(vm.OpMul)
		if r := v % 9; r != 0 {
			p.writeOp(vm.OpPush0 + vm.Opcode(r))
			p.writeOp(vm.OpAdd)
		}
	}
}

// writeRune writes r so that it gets pushed on the stack, in string mode when
// possible.
func (p *parser) writeRune(r rune) {
	if r == '"' || r == '\n' || r == '\r' || !unicode.IsPrint(r) {
		p.writeInt(int64(r))
		return
	}
	if !p.stringMode {
		p.b.WriteRune(vm.OpString.Rune())
		p.stringMode = true
	}
	p.b.WriteRune(r)
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) (string, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.scanError(msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents | scanner.ScanStrings | scanner.ScanChars
	p.s.Filename = name

	for errCount := 0; ; errCount = p.s.ErrorCount {
		tok := p.s.Scan()
		if tok == scanner.EOF {
			break
		}
		s := p.s.TokenText()

		switch tok {
		case scanner.Char, scanner.String:
			v, err := strconv.Unquote(s)
			if err != nil {
				if errCount == p.s.ErrorCount {
					p.scanError("invalid literal " + s)
				}
				break
			}
			if tok == scanner.Char {
				r, _ := utf8.DecodeRuneInString(v)
				p.writeRune(r)
				break
			}
			for _, r := range v {
				p.writeRune(r)
			}
		case scanner.Ident:
			if s == "(" {
				// skip comments
				pos := p.s.Position
				for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
				}
				if tok == scanner.EOF {
					p.error(pos, "unterminated comment")
				}
				break
			}
			if n, err := strconv.ParseInt(s, 0, 32); err == nil {
				p.writeInt(n)
				break
			} else if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
				p.scanError("integer out of range: " + s)
				break
			}
			if op, ok := vm.Lookup(s); ok {
				p.writeOp(op)
				break
			}
			if r, size := utf8.DecodeRuneInString(s); size == len(s) {
				if op := vm.Decode(r); op != vm.OpUnknown && op != vm.OpBlank {
					p.writeOp(op)
					break
				}
			}
			p.scanError("unknown instruction " + s)
		default:
			p.scanError("unexpected character " + strconv.QuoteRune(tok))
		}
	}
	if p.stringMode {
		p.b.WriteRune(vm.OpString.Rune())
	}

	if len(p.errs) > 0 {
		return "", p.errs
	}
	return p.b.String(), nil
}
