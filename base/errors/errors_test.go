// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	err := New("oops")
	assert.Equal(t, err, Log(err))
	assert.NoError(t, Log(nil))
}

func TestLog1(t *testing.T) {
	assert.Equal(t, 42, Log1(42, New("oops")))
	assert.Equal(t, "ok", Log1("ok", nil))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("oops")) })
}

func TestIgnore1(t *testing.T) {
	assert.Equal(t, 7, Ignore1(7, New("oops")))
}

func TestJoinIs(t *testing.T) {
	a := New("a")
	b := New("b")
	assert.True(t, Is(Join(a, b), b))
}
