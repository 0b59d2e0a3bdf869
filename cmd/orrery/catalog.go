// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"cogentcore.org/orrery/bodies"
	"cogentcore.org/orrery/config"
)

// Catalog prints the catalog of bodies, in scene units, in the
// configured format.
func Catalog(c *config.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return bodies.New().Encode(os.Stdout, c.Format)
}
