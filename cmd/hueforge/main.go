// Copyright (c) 2026, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hueforge serves a browser color picker that derives a full
// palette from one main color: tint and shade variants, readable text
// colors, and a favicon that follows the color live.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hueforge/hueforge/base/errors"
	"github.com/hueforge/hueforge/colors"
	"github.com/hueforge/hueforge/colors/palette"
	"github.com/hueforge/hueforge/config"
	"github.com/hueforge/hueforge/favicon"
	"github.com/hueforge/hueforge/web"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "hueforge:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		args = []string{"serve"}
	}
	switch args[0] {
	case "serve":
		return serve(args[1:])
	case "palette":
		return printPalette(args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	}
	usage()
	return fmt.Errorf("unknown command %q", args[0])
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: hueforge [command] [flags]

commands:
  serve    host the picker page (default)
  palette  print the palette for a given color and exit
`)
}

// serve hosts the picker page, reapplying the config file live as it
// changes, until interrupted.
func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	cfgFile := fs.String("config", "hueforge.toml", "config file (TOML or YAML)")
	addr := fs.String("addr", "", "listen address (overrides the config)")
	clr := fs.String("color", "", "initial main color (overrides the config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Open(*cfgFile)
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *clr != "" {
		cfg.Color = *clr
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	base, err := colors.FromString(cfg.Color)
	if err != nil {
		return err
	}
	eng := palette.New(base)
	srv, err := web.New(cfg, eng)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		errors.Log(config.Watch(ctx, *cfgFile, func(next *config.Config) {
			applyConfig(srv, next)
		}))
	}()

	return srv.ListenAndServe(ctx)
}

// applyConfig pushes a changed config file onto the running server.
// Address changes need a restart and are ignored here.
func applyConfig(srv *web.Server, cfg *config.Config) {
	slog.Info("reapplying changed config", "color", cfg.Color, "shape", cfg.Shape)
	c, err := colors.FromString(cfg.Color)
	if err != nil {
		errors.Log(err)
		return
	}
	if _, err := srv.SetColor(colors.AsHex(c)); err != nil {
		errors.Log(err)
		return
	}
	shape, err := favicon.ShapeFromString(cfg.Shape)
	if err != nil {
		errors.Log(err)
		return
	}
	srv.SetShape(shape)
}

// printPalette derives the palette for the color given as the single
// positional argument and prints it to stdout.
func printPalette(args []string) error {
	fs := flag.NewFlagSet("palette", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: hueforge palette <color>")
	}
	c, err := colors.FromString(fs.Arg(0))
	if err != nil {
		return err
	}
	printScheme(os.Stdout, palette.New(c))
	return nil
}
