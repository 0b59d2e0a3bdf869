// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command orrery shows an animated 3D model of the solar system:
// the sun and the eight planets orbiting it, with a starfield behind.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/orrery/config"
)

func main() {
	opts := cli.DefaultOptions("orrery", "An animated 3D model of the solar system.")
	opts.DefaultFiles = []string{"orrery.toml"}
	cli.Run(opts, &config.Config{}, commands()...)
}

// commands returns the orrery commands; run is the root command.
func commands() []*cli.Cmd[*config.Config] {
	return []*cli.Cmd[*config.Config]{
		{
			Func: Run,
			Name: "run",
			Doc:  "Run opens a window with the animated solar system.",
			Root: true,
		},
		{
			Func: Headless,
			Name: "headless",
			Doc:  "Headless runs the animation without a window and prints the final poses.",
		},
		{
			Func: Catalog,
			Name: "catalog",
			Doc:  "Catalog prints the catalog of bodies in scene units.",
		},
	}
}
