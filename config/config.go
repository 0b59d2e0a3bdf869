// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of the orrery commands.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/orrery/animate"
	"cogentcore.org/orrery/bodies"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration for all orrery commands. It is set from
// the default tags, then from an orrery.toml file if there is one, then
// from command line flags.
type Config struct {

	// Animation has the rates that drive the animation.
	Animation animate.Params `display:"add-fields"`

	// Textures is the directory with the texture images of the bodies,
	// named by body id (sun.jpg, earth.jpg, ...) plus stars.jpg.
	// A leading ~ is expanded to the home directory.
	// Missing images are replaced by plain colors.
	Textures string `default:"textures" flag:"t,textures"`

	// Title is the title of the window.
	Title string `cmd:"run" default:"Solar System"`

	// FPS is the frame rate of headless runs.
	FPS float64 `cmd:"headless" default:"60"`

	// Frames is the number of frames of headless runs;
	// 0 runs until interrupted.
	Frames int `cmd:"headless" default:"600"`

	// MetricsAddr, if set, is the address on which headless runs
	// serve prometheus metrics.
	MetricsAddr string `cmd:"headless" flag:"metrics"`

	// Format is the output format of the catalog command: yaml or toml.
	Format bodies.Formats `cmd:"catalog" default:"yaml"`
}

// TexturesFS returns the file system of the texture directory,
// or nil if it does not exist.
func (cfg *Config) TexturesFS() fs.FS {
	if cfg.Textures == "" {
		return nil
	}
	dir, err := homedir.Expand(cfg.Textures)
	if errors.Log(err) != nil {
		return nil
	}
	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		return nil
	}
	return os.DirFS(dir)
}

// Validate returns an error if the configuration cannot be used.
func (cfg *Config) Validate() error {
	if cfg.Animation.TimeScale <= 0 {
		return fmt.Errorf("time scale must be positive, got %g", cfg.Animation.TimeScale)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %g", cfg.FPS)
	}
	if cfg.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", cfg.Frames)
	}
	switch cfg.Format {
	case bodies.YAML, bodies.TOML:
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	return nil
}
