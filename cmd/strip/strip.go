/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package strip provides the strip command for milon.
package strip

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/milon/config"
	"bennypowers.dev/milon/fs"
	"bennypowers.dev/milon/stylesheet"
)

// Cmd is the strip cobra command.
var Cmd = &cobra.Command{
	Use:   "strip [stylesheets...]",
	Short: "Strip reserved token-group blocks from generated stylesheets",
	Long: `Strip removes every top-level block whose declaration begins with the
reserved token-group name from a previously generated stylesheet, and
rewrites the file in place. All other lines are left unchanged.

Examples:
  milon strip styles.scss
  milon strip --group effect-styles build/*.scss`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("group", "g", "", "Reserved group name (default "+stylesheet.DefaultReservedGroup+")")
}

func run(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")

	filesystem := fs.NewOSFileSystem()

	if group == "" {
		group = config.LoadOrDefault(filesystem, ".").ReservedGroup
	}

	var failures int
	for _, path := range args {
		data, err := filesystem.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			failures++
			continue
		}

		stripped := stylesheet.StripBlocks(data, group)

		if err := filesystem.WriteFile(path, stripped, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			failures++
			continue
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to strip %d file(s)", failures)
	}
	return nil
}
