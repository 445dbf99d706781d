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

package fi_test

import (
	"bytes"
	"testing"

	"github.com/db47h/funge/internal/fi"
	"github.com/pkg/errors"
)

type limitWriter struct {
	n int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errors.New("short write")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestErrWriter(t *testing.T) {
	var b bytes.Buffer
	ew := fi.NewErrWriter(&b)
	ew.WriteString("hello ")
	ew.Write([]byte("world"))
	if ew.Err != nil || b.String() != "hello world" || ew.N != 11 {
		t.Fatalf("got %q, %d, %v", b.String(), ew.N, ew.Err)
	}
	if fi.NewErrWriter(ew) != ew {
		t.Error("ErrWriter wrapped twice")
	}

	ew = fi.NewErrWriter(&limitWriter{4})
	ew.WriteString("abc")
	if _, err := ew.WriteString("def"); err == nil {
		t.Fatal("expected error")
	}
	if n, err := ew.WriteString("ghi"); n != 0 || err != ew.Err {
		t.Errorf("got %d, %v after error", n, err)
	}
	if ew.N != 4 {
		t.Errorf("expected 4 bytes written, got %d", ew.N)
	}
}
