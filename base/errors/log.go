// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Log takes the given error and logs it if it is non-nil, adding the
// file and line of the caller. It returns the error unchanged, so it
// can wrap a call in-place when the error is handled elsewhere too.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and logs the error if it is
// non-nil, returning only the value. It handles the common case of a
// two-return call whose error is worth recording but not acting on.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "from", CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil. It is for errors during
// initialization that indicate a programming mistake, not a runtime
// condition.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Ignore1 returns only the value from a two-return call, discarding
// the error. Use it when the call genuinely cannot fail for the given
// arguments.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns the file and line of the function that called the
// errors helper, as a file:line string.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
