// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate - Commitgate is a standalone commit message gate for pull requests.
It validates commit message formatting against style rules and reports results to the console, CI step summaries, and GitHub.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commands contains Cobra subcommands for the Commitgate CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the Commitgate root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITGATE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "commitgate",
		Short:         "Commitgate - Commit message validation gate",
		Long:          "Commitgate validates commit message formatting for pull requests and local revision ranges, and reports results to the console, CI step summaries, and GitHub.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Commitgate",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Commitgate version %s\n", version)
		},
	})

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewLocalCommand())
	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewReportCommand())

	return cmd
}
