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
	"strings"
	"unicode/utf8"
)

// Default grid dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Pos is a grid position.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string {
	return "(" + strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col) + ")"
}

// Dir is the direction the instruction pointer moves in.
type Dir uint8

// Directions. The zero value is Right.
const (
	Right Dir = iota
	Left
	Up
	Down
)

var dirNames = [...]string{"right", "left", "up", "down"}

var deltas = [...]Pos{
	Right: {0, 1},
	Left:  {0, -1},
	Up:    {-1, 0},
	Down:  {1, 0},
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "dir(" + strconv.Itoa(int(d)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (d Dir) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Space is a fixed size grid of cells holding a program. It is read by the
// interpreter on every step and written to by the put instruction.
type Space struct {
	width, height int
	cells         []Cell
}

// NewSpace returns a new width x height Space initialized from src. The rune
// at column j of line i is stored at Pos{i, j}. Cells not covered by src are
// blank. Lines and characters beyond the grid bounds are dropped. Both "\n"
// and "\r\n" line endings are accepted.
//
// width and height must be positive and their product must not exceed
// MaxCells.
func NewSpace(src string, width, height int) *Space {
	s := &Space{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for k := range s.cells {
		s.cells[k] = ' '
	}
	for row, line := range strings.Split(src, "\n") {
		if row >= height {
			break
		}
		line = strings.TrimSuffix(line, "\r")
		col := 0
		for _, r := range line {
			if col >= width {
				break
			}
			s.cells[row*width+col] = Cell(r)
			col++
		}
	}
	return s
}

// Width returns the number of columns of the grid.
func (s *Space) Width() int { return s.width }

// Height returns the number of rows of the grid.
func (s *Space) Height() int { return s.height }

// Read returns the cell at p.
func (s *Space) Read(p Pos) Cell {
	return s.cells[p.Row*s.width+p.Col]
}

// Write stores v at p.
func (s *Space) Write(p Pos, v Cell) {
	s.cells[p.Row*s.width+p.Col] = v
}

// Contains returns true if (row, col) is within the grid bounds.
func (s *Space) Contains(row, col Cell) bool {
	return row >= 0 && int64(row) < int64(s.height) && col >= 0 && int64(col) < int64(s.width)
}

// Row returns the cells of the given row. Changes to the returned slice are
// reflected in the grid.
func (s *Space) Row(n int) []Cell {
	return s.cells[n*s.width : (n+1)*s.width]
}

// Next returns the position one step away from p in direction d, wrapping
// around the grid edges.
func (s *Space) Next(p Pos, d Dir) Pos {
	dp := deltas[d]
	return Pos{
		Row: (p.Row + dp.Row + s.height) % s.height,
		Col: (p.Col + dp.Col + s.width) % s.width,
	}
}

// Wrap maps (row, col) into the grid bounds, wrapping around both axes.
func (s *Space) Wrap(row, col Cell) Pos {
	r := int(int64(row) % int64(s.height))
	if r < 0 {
		r += s.height
	}
	c := int(int64(col) % int64(s.width))
	if c < 0 {
		c += s.width
	}
	return Pos{r, c}
}

// String returns the grid as source text. Trailing blanks on each line and
// trailing empty lines are removed. Cells that do not hold a valid character
// are written as utf8.RuneError.
func (s *Space) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// WriteTo writes the grid as source text to w. See String.
func (s *Space) WriteTo(w io.Writer) (n int64, err error) {
	var b []byte
	empty := 0
	for row := 0; row < s.height; row++ {
		line := s.Row(row)
		end := len(line)
		for end > 0 && line[end-1] == ' ' {
			end--
		}
		if end == 0 {
			empty++
			continue
		}
		for ; empty > 0; empty-- {
			b = append(b, '\n')
		}
		for _, c := range line[:end] {
			r, _ := c.Rune()
			b = utf8.AppendRune(b, r)
		}
		b = append(b, '\n')
	}
	k, err := w.Write(b)
	return int64(k), err
}
