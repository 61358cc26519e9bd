// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package constants

const (
	Toporecover = "toporecover"

	// DefaultGeneralSettings is the general settings path relative to the working directory.
	DefaultGeneralSettings = "settings/general_settings.yml"
	// DefaultRawDir holds the raw captures and the normalized configurations.
	DefaultRawDir    = "raw_output"
	DefaultMatchlist = "matchlist"

	// DefaultUploadPort is the console server telnet port used when none is given.
	DefaultUploadPort = "23"
	DefaultUploadIOS  = "cisco_ios_telnet"

	NotApplicable = "-"
)
