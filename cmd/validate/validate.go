/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for milon.
package validate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token export files",
	Long: `Validate checks that token export files have the expected shape: a flat
array of token objects with unique ids and values matching their declared
types.

Examples:
  milon validate tokens.json
  milon validate  # validates files from .config/milon.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		var err error
		files, err = cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error resolving config files: %w", err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	var total int
	for _, path := range files {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			total++
			continue
		}

		for _, verr := range validator.Validate(data, path) {
			fmt.Fprintln(os.Stderr, verr.Error())
			total++
		}
	}

	if total > 0 {
		return fmt.Errorf("found %d problem(s)", total)
	}

	fmt.Printf("%d file(s) valid\n", len(files))
	return nil
}
