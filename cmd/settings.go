// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"errors"

	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/parser"
	"github.com/toporecover/toporecover/types"
	"github.com/toporecover/toporecover/utils"
)

// loadSettings resolves the device settings path from the flags or the
// general settings and loads it.
func loadSettings() (*types.Settings, error) {
	p := settingsPath
	if p == "" {
		g, err := types.LoadGeneralSettings(generalSettingsPath)
		if err != nil {
			return nil, err
		}
		p = g.ReaderSettingsPath
	}
	p, err := utils.ExpandPath(p)
	if err != nil {
		return nil, err
	}
	log.Debugf("reading settings from %s", p)
	return types.LoadSettings(p, envFile)
}

// loadMatchlist loads the noise patterns. A missing file strips nothing.
func loadMatchlist() (*parser.Matchlist, error) {
	p, err := utils.ExpandPath(matchlistPath)
	if err != nil {
		return nil, err
	}
	m, err := parser.LoadMatchlist(p)
	if errors.Is(err, tperrors.ErrFileNotFound) {
		log.Warnf("matchlist %s not found, no noise lines are removed", p)
		return parser.NewMatchlist(nil), nil
	}
	return m, err
}
