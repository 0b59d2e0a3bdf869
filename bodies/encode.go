// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bodies

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the text formats the catalog can be written in.
type Formats string

const (
	// YAML writes the catalog as a YAML document.
	YAML Formats = "yaml"

	// TOML writes the catalog as a TOML document.
	TOML Formats = "toml"
)

// document is the encoded layout of a [Catalog].
type document struct {
	Sun     Body   `yaml:"sun" toml:"sun"`
	Planets []Body `yaml:"planets" toml:"planets"`
}

// Encode writes the catalog to w in the given format.
func (c *Catalog) Encode(w io.Writer, format Formats) error {
	doc := document{Sun: c.sun, Planets: c.planets}
	switch format {
	case YAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("bodies: encoding yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("bodies: encoding toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("bodies: unknown format %q", format)
}
