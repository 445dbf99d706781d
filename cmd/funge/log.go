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
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// newLogger returns a logger writing to w at the configured level and, if a
// trace file is configured, every debug record as JSON to that file. The
// returned function flushes and closes the trace file.
func newLogger(cfg *config, w io.Writer) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, errors.Wrap(err, "log_level")
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}
	closeFn := func() error { return nil }
	if cfg.TraceFile != "" {
		f, err := os.Create(cfg.TraceFile)
		if err != nil {
			return nil, nil, errors.Wrap(err, "trace file")
		}
		bw := bufio.NewWriter(f)
		handlers = append(handlers, slog.NewJSONHandler(bw, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closeFn = func() error {
			err := bw.Flush()
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			return errors.Wrap(err, "trace file")
		}
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}
