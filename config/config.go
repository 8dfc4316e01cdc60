// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the hueforge server configuration from three
// layers: struct tag defaults, an optional TOML or YAML file, and
// HUEFORGE_ prefixed environment variables, applied in that order so
// that later layers win.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hueforge/hueforge/colors"
	"github.com/hueforge/hueforge/favicon"
)

// EnvPrefix is the prefix of the environment variables read into
// [Config], so the color is set with HUEFORGE_COLOR and so on.
const EnvPrefix = "HUEFORGE_"

// Config is the runtime configuration for the hueforge server.
type Config struct {

	// Addr is the address the HTTP server listens on.
	Addr string `toml:"addr" yaml:"addr" env:"ADDR" default:":8650"`

	// Color is the initial main color, as an HTML-style #RRGGBB code
	// or a CSS basic color name.
	Color string `toml:"color" yaml:"color" env:"COLOR" default:"#3366CC"`

	// Shape is the favicon shape, "circle" or "square".
	Shape string `toml:"shape" yaml:"shape" env:"SHAPE" default:"circle"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose" yaml:"verbose" env:"VERBOSE"`
}

// Open returns a [Config] assembled from the defaults, the given file,
// and the environment. The file may be TOML or YAML, by extension; an
// empty name or a missing file just skips that layer, but an
// unreadable or malformed file is an error. The result is validated
// before it is returned.
func Open(file string) (*Config, error) {
	cfg := &Config{}
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file != "" {
		if err := openFile(cfg, file); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openFile overlays the values from the given TOML or YAML file onto
// the config. A file that does not exist is skipped silently.
func openFile(cfg *Config, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", file, err)
	}
	switch ext := filepath.Ext(file); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("config: parsing %s: %w", file, err)
	}
	return nil
}

// Validate checks that the color and shape values parse. It does not
// check the address; that surfaces naturally when listening.
func (c *Config) Validate() error {
	if _, err := colors.FromString(c.Color); err != nil {
		return fmt.Errorf("config: color: %w", err)
	}
	if _, err := favicon.ShapeFromString(c.Shape); err != nil {
		return fmt.Errorf("config: shape: %w", err)
	}
	return nil
}

// SetFromDefaults sets the values of the given config object from
// `default:` struct field tag values. The object must be a pointer to
// a struct of string and bool fields.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected pointer to struct, got %T", cfg)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("default")
		if !ok {
			continue
		}
		f := v.Field(i)
		switch f.Kind() {
		case reflect.String:
			f.SetString(tag)
		case reflect.Bool:
			f.SetBool(tag == "true")
		default:
			return fmt.Errorf("config: no default tag support for field kind %v", f.Kind())
		}
	}
	return nil
}
