/*
Copyright 2026 Tokenbridge Contributors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenbridge.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tokenbridge/tokenbridge/cmd/lint"
	"github.com/tokenbridge/tokenbridge/cmd/normalize"
	"github.com/tokenbridge/tokenbridge/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokenbridge",
	Short: "Normalize design tokens from mixed sources",
	Long: `tokenbridge parses design tokens from Figma variable exports, compact
token maps and CSS custom properties into one canonical theme document, and
lints the result.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(lint.Cmd)
	rootCmd.AddCommand(normalize.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
