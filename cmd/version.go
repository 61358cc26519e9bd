// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"
	"io"
	"os"

	gover "github.com/hashicorp/go-version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/toporecover/toporecover/types"
)

// Version variables set at build time (e.g., with -ldflags).
var (
	Version = "0.0.0"
	commit  = "none"
	date    = "unknown"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show toporecover version",
	Run: func(_ *cobra.Command, _ []string) {
		printVersion(os.Stdout)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "    version: %s\n", Version)
	fmt.Fprintf(w, "     commit: %s\n", commit)
	fmt.Fprintf(w, "       date: %s\n", date)

	g, err := types.LoadGeneralSettings(generalSettingsPath)
	if err != nil {
		log.Debugf("general settings not read: %v", err)
		return
	}
	fmt.Fprintf(w, "   settings: %s (%s)\n", g.SemVer(), g.ReaderSettingsPath)

	if v, err := gover.NewVersion(Version); err == nil && v.LessThan(g.SemVer()) {
		fmt.Fprintf(w, "\nthe settings were written for version %s, this binary is older\n", g.SemVer())
	}
}
