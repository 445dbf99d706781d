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

package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// eotReader reports io.EOF when reading an EOT character (CTRL-D). In raw mode
// the terminal passes it through instead of closing the input.
type eotReader struct {
	r   io.Reader
	eot bool
}

func (r *eotReader) Read(p []byte) (int, error) {
	if r.eot {
		return 0, io.EOF
	}
	n, err := r.r.Read(p)
	for k, b := range p[:n] {
		if b == 4 {
			r.eot = true
			if k == 0 {
				return 0, io.EOF
			}
			return k, nil
		}
	}
	return n, err
}

// setupIO switches stdin to raw mode if enabled and stdin is a terminal. It
// returns the reader to use as input and a function to restore the terminal
// settings.
func setupIO(stdin io.Reader, raw bool) (io.Reader, func()) {
	f, ok := stdin.(*os.File)
	if !raw || !ok || !term.IsTerminal(int(f.Fd())) {
		return stdin, nil
	}
	tearDown, err := setRawIO(f)
	if err != nil {
		return stdin, nil
	}
	return &eotReader{r: f}, tearDown
}
