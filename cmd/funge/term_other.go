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

//go:build !linux

package main

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// setRawIO attempts to set f to raw IO and returns a function to restore IO
// settings as they were before. Unlike on linux, echo is disabled.
func setRawIO(f *os.File) (func(), error) {
	fd := int(f.Fd())
	st, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "MakeRaw failed")
	}
	return func() {
		term.Restore(fd, st)
	}, nil
}
