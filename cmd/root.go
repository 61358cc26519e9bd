// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/toporecover/toporecover/constants"
	"github.com/toporecover/toporecover/utils"
)

var (
	debugCount          int
	logLevel            string
	logFile             string
	generalSettingsPath string
	settingsPath        string
	rawDir              string
	matchlistPath       string
	envFile             string
)

// RootCmd represents the base command when called without any subcommands.
// Without a subcommand it collects all devices and parses the captures.
var RootCmd = &cobra.Command{
	Use:   constants.Toporecover,
	Short: "read, normalize and restore Cisco device configurations",
	Long: `toporecover reads the running configuration, interface state, VLAN and VTP status of the
devices listed in the settings file, normalizes the captures into configuration files that can be
uploaded again, and replays such a file onto a device.`,
	PersistentPreRunE: preRunFn,
	RunE:              runFn,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&debugCount, "debug", "d", "enable debug mode")
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "", "info",
		"logging level; one of [trace, debug, info, warning, error, fatal]")
	RootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "", "",
		"also append logs to this file, e.g. logs/log.txt")
	RootCmd.PersistentFlags().StringVarP(&generalSettingsPath, "general-settings", "", constants.DefaultGeneralSettings,
		"path to the general settings file")
	RootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "s", "",
		"path to the device settings file, overrides reader_settings_path of the general settings")
	RootCmd.PersistentFlags().StringVarP(&rawDir, "raw-dir", "", constants.DefaultRawDir,
		"directory of the raw captures and the normalized configurations")
	RootCmd.PersistentFlags().StringVarP(&matchlistPath, "matchlist", "m", constants.DefaultMatchlist,
		"path to the noise pattern list")
	RootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "", "",
		"load environment variables from this file before reading the settings")
	_ = RootCmd.MarkPersistentFlagFilename("settings", "*.yml", "*.yaml", "*.json")
}

func preRunFn(_ *cobra.Command, _ []string) error {
	// setting log level
	switch {
	case debugCount > 0:
		log.SetLevel(log.DebugLevel)
	default:
		l, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(l)
	}

	// setting output to stderr, so that the summary tables can be piped
	log.SetOutput(os.Stderr)
	if logFile != "" {
		p, err := utils.ExpandPath(logFile)
		if err != nil {
			return err
		}
		f, err := os.OpenFile(p, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	return nil
}
