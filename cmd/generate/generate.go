/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for milon.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/internal/logger"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/token"
	"bennypowers.dev/milon/xaml"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [files...]",
	Short: "Generate XAML resource dictionaries from token exports",
	Long: `Generate XAML ResourceDictionary documents from design-token exports.

The base document groups tokens by type. For every mode detected in the
collection (e.g. light/dark), one additional document is generated per
collection, named <base>.<collection>.<mode>.xaml.

Examples:
  # Generate from a single export
  milon generate tokens.json

  # Exclude internal tokens and write into a resources directory
  milon generate -x '^internal-' -d Resources/Styles tokens.json

  # Use files, excludes and output directory from .config/milon.yaml
  milon generate`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("filename", "f", "", "Base document filename (default "+xaml.DefaultFilename+")")
	Cmd.Flags().StringArrayP("exclude", "x", nil, "Exclude tokens whose id matches this pattern (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	filenameFlag, _ := cmd.Flags().GetString("filename")
	excludeFlag, _ := cmd.Flags().GetStringArray("exclude")

	filesystem := fs.NewOSFileSystem()
	exportParser := parser.New()

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

	tokens, err := parseAll(filesystem, exportParser, files)
	if err != nil {
		return err
	}

	// CLI flags take precedence over config
	opts := cfg.GenerateOptions()
	if filenameFlag != "" {
		opts.Filename = filenameFlag
	}
	if len(excludeFlag) > 0 {
		opts.ExcludePatterns = excludeFlag
	}

	result, err := xaml.Generate(tokens, opts)
	if err != nil {
		return err
	}

	for _, w := range result.Diagnostics.Warnings {
		logger.Warn("%s", w)
	}

	outDir := viper.GetString("outDir")
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	if outDir == "" {
		outDir = "."
	}
	if err := filesystem.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("error creating %s: %w", outDir, err)
	}

	for _, file := range result.Files {
		path := filepath.Join(outDir, file.Filename)
		if err := filesystem.WriteFile(path, file.Contents, 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}

	return nil
}

// parseAll parses every export file into one combined collection,
// enforcing id uniqueness across files.
func parseAll(filesystem fs.FileSystem, exportParser *parser.Parser, files []string) ([]*token.Token, error) {
	var all []*token.Token
	seen := make(map[string]string)

	for _, file := range files {
		tokens, err := exportParser.ParseFile(filesystem, file)
		if err != nil {
			return nil, err
		}
		for _, tok := range tokens {
			if origin, dup := seen[tok.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate token id %q (also defined in %s)", file, tok.ID, origin)
			}
			seen[tok.ID] = file
		}
		all = append(all, tokens...)
	}

	return all, nil
}
