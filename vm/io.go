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
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

type runeWriter interface {
	io.Writer
	WriteRune(r rune) (size int, err error)
}

type runeWriterWrapper struct {
	io.Writer
}

func (w *runeWriterWrapper) WriteRune(r rune) (size int, err error) {
	b := [utf8.UTFMax]byte{}
	l := utf8.EncodeRune(b[:], r)
	return w.Writer.Write(b[:l])
}

func (w *runeWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements runeWriter or wraps it up into
// a runeWriterWrapper
func newWriter(w io.Writer) runeWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case runeWriter:
		return ww
	default:
		return &runeWriterWrapper{w}
	}
}

// runeReaderWrapper wraps a basic reader into a io.RuneReader and io.Closer
type runeReaderWrapper struct {
	io.Reader
}

func (r *runeReaderWrapper) ReadRune() (ret rune, size int, err error) {
	var (
		b = [utf8.UTFMax]byte{}
		i = 0
	)
	for i < utf8.UTFMax && err == nil && !utf8.FullRune(b[:i]) {
		var n int
		n, err = r.Reader.Read(b[i : i+1])
		i += n
	}
	if i == 0 {
		return 0, 0, err
	}
	ret, size = rune(b[0]), 1
	if ret >= utf8.RuneSelf {
		ret, size = utf8.DecodeRune(b[:i])
	}
	return ret, size, err
}

func (r *runeReaderWrapper) Close() error {
	if c, ok := r.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func newRuneReader(r io.Reader) io.RuneReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case io.RuneReader:
		return rr
	default:
		return &runeReaderWrapper{r}
	}
}

type multiRuneReader struct {
	readers []io.RuneReader
}

func (mr *multiRuneReader) ReadRune() (r rune, size int, err error) {
	for len(mr.readers) > 0 {
		r, size, err = mr.readers[0].ReadRune()
		if size > 0 || err != io.EOF {
			if err == io.EOF {
				err = nil
			}
			return
		}
		// discard the reader and optionally close it
		if cl, ok := mr.readers[0].(io.Closer); ok {
			cl.Close()
		}
		mr.readers = mr.readers[1:]
	}
	return 0, 0, io.EOF
}

func (mr *multiRuneReader) pushReader(r io.Reader) {
	mr.readers = append([]io.RuneReader{newRuneReader(r)}, mr.readers...)
}

// PushInput sets r as the current input Reader for the instance. When this
// reader reaches EOF, the previously pushed reader will be used.
func (i *Instance) PushInput(r io.Reader) {
	if r == nil {
		return
	}
	// dont use a multi reader unless necessary
	switch in := i.input.(type) {
	case nil: // no input yet, single assign
		i.input = newRuneReader(r)
	case *multiRuneReader:
		in.pushReader(r)
	default:
		i.input = &multiRuneReader{[]io.RuneReader{newRuneReader(r), i.input}}
	}
}

func (i *Instance) readRune() (rune, error) {
	if n := len(i.pending); n > 0 {
		r := i.pending[n-1]
		i.pending = i.pending[:n-1]
		return r, nil
	}
	if i.input == nil {
		return 0, io.EOF
	}
	r, size, err := i.input.ReadRune()
	if size > 0 {
		return r, nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, err
}

func (i *Instance) unreadRune(r rune) {
	i.pending = append(i.pending, r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// readInt skips input up to the first digit or minus sign directly followed by
// a digit and parses a decimal integer. The rune terminating the number is
// consumed. Numbers that do not fit in a Cell wrap around like any other Cell
// arithmetic.
func (i *Instance) readInt() (Cell, error) {
	var (
		r   rune
		err error
		neg bool
	)
	for {
		if r, err = i.readRune(); err != nil {
			return 0, err
		}
		if isDigit(r) {
			break
		}
		if r == '-' {
			if r, err = i.readRune(); err != nil {
				return 0, err
			}
			if isDigit(r) {
				neg = true
				break
			}
			i.unreadRune(r)
		}
	}
	var n Cell
	for {
		n = n*10 + Cell(r-'0')
		if r, err = i.readRune(); err != nil || !isDigit(r) {
			break
		}
	}
	if err != nil && err != io.EOF {
		return 0, err
	}
	if neg {
		n = -n
	}
	return n, nil
}

// readInput pushes the result of read on the stack, applying the end of input
// policy.
func (i *Instance) readInput(read func() (Cell, error)) error {
	v, err := read()
	switch {
	case err == nil:
	case err != io.EOF:
		return i.newErrorFull(IOError, errors.Wrap(err, "read failed"))
	case i.onEOF == Fault:
		return i.newErrorFull(EOF, err)
	case i.onEOF == MinusOne:
		v = -1
	default:
		v = 0
	}
	i.Push(v)
	return nil
}

func (i *Instance) reserve(n int) error {
	if i.maxOutput > 0 && i.outCount+int64(n) > i.maxOutput {
		return i.newError(OutputLimit)
	}
	i.outCount += int64(n)
	return nil
}

func (i *Instance) emitRune(r rune) error {
	if i.output == nil {
		return nil
	}
	if err := i.reserve(utf8.RuneLen(r)); err != nil {
		return err
	}
	if _, err := i.output.WriteRune(r); err != nil {
		return i.newErrorFull(IOError, errors.Wrap(err, "write failed"))
	}
	return nil
}

func (i *Instance) emitInt(v Cell) error {
	if i.output == nil {
		return nil
	}
	var b [16]byte
	s := append(strconv.AppendInt(b[:0], int64(v), 10), ' ')
	if err := i.reserve(len(s)); err != nil {
		return err
	}
	if _, err := i.output.Write(s); err != nil {
		return i.newErrorFull(IOError, errors.Wrap(err, "write failed"))
	}
	return nil
}

func (i *Instance) flush() error {
	if f, ok := i.output.(flusher); ok {
		return errors.Wrap(f.Flush(), "flush failed")
	}
	return nil
}
