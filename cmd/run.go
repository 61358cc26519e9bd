// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// runCmd represents the run command, also the default action of the root command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "collect every device, then parse the captures",
	RunE:  runFn,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

// runFn collects every device and parses the captures it saved.
func runFn(cmd *cobra.Command, _ []string) error {
	res, err := collect(cmd.Context(), os.Stdout)
	if err != nil {
		return err
	}

	var files []string
	for _, r := range res {
		if r.Err == nil {
			files = append(files, r.Path)
		}
	}
	if len(files) == 0 {
		return nil
	}
	return parse(cmd.Context(), os.Stdout, files)
}
