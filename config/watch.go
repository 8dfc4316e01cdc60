// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/hueforge/hueforge/base/errors"
)

// Watch monitors the given config file and calls fun with a freshly
// opened [Config] after every change. It watches the file's directory,
// not the file, because atomic writes (write to temp, then rename)
// lose a watch on the original inode; events for other files in the
// directory are ignored. A change that fails to load or validate is
// logged and skipped, leaving the previous config in effect.
//
// Watch blocks until the context is canceled, so it is normally run in
// its own goroutine.
func Watch(ctx context.Context, file string, fun func(cfg *Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: creating watcher: %w", err)
	}
	defer watcher.Close()

	dir, name := filepath.Split(file)
	if dir == "" {
		dir = "."
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("config: watching %s: %w", dir, err)
	}
	slog.Debug("watching config", "file", file)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, evname := filepath.Split(event.Name); evname != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("config changed", "file", file, "op", event.Op)
			cfg, err := Open(file)
			if err != nil {
				errors.Log(err)
				continue
			}
			fun(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
