/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for milon.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/milon/cmd/generate"
	"bennypowers.dev/milon/cmd/strip"
	"bennypowers.dev/milon/cmd/validate"
	"bennypowers.dev/milon/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "milon",
	Short: "Generate XAML resource dictionaries from design tokens",
	Long:  `milon converts design-token exports (colors, dimensions, typography, shadows) into XAML ResourceDictionary documents, one per detected mode and collection.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("out-dir", "d", "", "Output directory for generated documents")
	_ = viper.BindPFlag("outDir", rootCmd.PersistentFlags().Lookup("out-dir"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(strip.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
