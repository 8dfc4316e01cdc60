// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenDefaults(t *testing.T) {
	cfg, err := Open("")
	assert.NoError(t, err)
	assert.Equal(t, ":8650", cfg.Addr)
	assert.Equal(t, "#3366CC", cfg.Color)
	assert.Equal(t, "circle", cfg.Shape)
	assert.False(t, cfg.Verbose)
}

func TestOpenMissingFile(t *testing.T) {
	cfg, err := Open(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(t, err)
	assert.Equal(t, "#3366CC", cfg.Color)
}

func TestOpenTOML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hueforge.toml")
	assert.NoError(t, os.WriteFile(file, []byte("color = \"#112233\"\nshape = \"square\"\n"), 0666))

	cfg, err := Open(file)
	assert.NoError(t, err)
	assert.Equal(t, "#112233", cfg.Color)
	assert.Equal(t, "square", cfg.Shape)
	assert.Equal(t, ":8650", cfg.Addr) // untouched fields keep defaults
}

func TestOpenYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hueforge.yaml")
	assert.NoError(t, os.WriteFile(file, []byte("addr: :9911\ncolor: navy\n"), 0666))

	cfg, err := Open(file)
	assert.NoError(t, err)
	assert.Equal(t, ":9911", cfg.Addr)
	assert.Equal(t, "navy", cfg.Color)
	assert.Equal(t, "circle", cfg.Shape)
}

func TestOpenEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hueforge.toml")
	assert.NoError(t, os.WriteFile(file, []byte("color = \"#112233\"\n"), 0666))

	t.Setenv("HUEFORGE_COLOR", "#AABBCC")
	t.Setenv("HUEFORGE_VERBOSE", "true")

	cfg, err := Open(file)
	assert.NoError(t, err)
	assert.Equal(t, "#AABBCC", cfg.Color) // environment beats the file
	assert.True(t, cfg.Verbose)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "hueforge.toml")
	assert.NoError(t, os.WriteFile(file, []byte("color = \"#11223\"\n"), 0666))
	_, err := Open(file)
	assert.Error(t, err)

	assert.NoError(t, os.WriteFile(file, []byte("color = [not toml\n"), 0666))
	_, err = Open(file)
	assert.Error(t, err)

	bad := filepath.Join(dir, "hueforge.ini")
	assert.NoError(t, os.WriteFile(bad, []byte("color=#112233\n"), 0666))
	_, err = Open(bad)
	assert.Error(t, err)

	t.Setenv("HUEFORGE_SHAPE", "triangle")
	_, err = Open("")
	assert.Error(t, err)
}

func TestSetFromDefaults(t *testing.T) {
	type opts struct {
		Name string `default:"hue"`
		On   bool   `default:"true"`
		Off  bool
	}
	o := &opts{}
	assert.NoError(t, SetFromDefaults(o))
	assert.Equal(t, "hue", o.Name)
	assert.True(t, o.On)
	assert.False(t, o.Off)

	assert.Error(t, SetFromDefaults(opts{}))

	type badOpts struct {
		N int `default:"3"`
	}
	assert.Error(t, SetFromDefaults(&badOpts{}))
}
