/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the milon generator.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/milon/stylesheet"
	"bennypowers.dev/milon/xaml"
)

// Config represents the milon configuration.
type Config struct {
	// Files specifies token export files to load (supports globs).
	Files []string `yaml:"files" json:"files"`

	// ExcludePatterns are regular expressions matched against token IDs;
	// matching tokens are dropped from all output.
	ExcludePatterns []string `yaml:"excludePatterns" json:"excludePatterns"`

	// OutputDir is the directory generated documents are written into.
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Filename is the base document name. OutputFilename is accepted as
	// an alias; Filename wins when both are set.
	Filename       string `yaml:"filename" json:"filename"`
	OutputFilename string `yaml:"outputFilename" json:"outputFilename"`

	// ReservedGroup is the stylesheet block name the strip command removes.
	ReservedGroup string `yaml:"reservedGroup" json:"reservedGroup"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutputDir:     ".",
		Filename:      xaml.DefaultFilename,
		ReservedGroup: stylesheet.DefaultReservedGroup,
	}
}

// Validate checks the configuration shape once at the boundary, so a bad
// config fails the build before any output is produced.
func (c *Config) Validate() error {
	for _, p := range c.ExcludePatterns {
		if _, err := regexp.Compile(p); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}
	if name := c.EffectiveFilename(); strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("filename %q must not contain path separators", name)
	}
	return nil
}

// EffectiveFilename resolves the base document name, honoring the
// outputFilename alias and the default.
func (c *Config) EffectiveFilename() string {
	if c.Filename != "" {
		return c.Filename
	}
	if c.OutputFilename != "" {
		return c.OutputFilename
	}
	return xaml.DefaultFilename
}

// GenerateOptions returns the conversion options derived from the config.
func (c *Config) GenerateOptions() xaml.Options {
	return xaml.Options{
		ExcludePatterns: c.ExcludePatterns,
		Filename:        c.EffectiveFilename(),
	}
}
