// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"
	"os"

	gover "github.com/hashicorp/go-version"
	tperrors "github.com/toporecover/toporecover/errors"
	"gopkg.in/yaml.v2"
)

// GeneralSettings holds the program wide settings.
type GeneralSettings struct {
	Version            string `yaml:"version"`
	ReaderSettingsPath string `yaml:"reader_settings_path"`

	version *gover.Version
}

// LoadGeneralSettings reads and checks the general settings file by path.
func LoadGeneralSettings(path string) (*GeneralSettings, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("general settings %s: %w", path, tperrors.ErrFileNotFound)
	}
	if err != nil {
		return nil, &tperrors.IOError{Op: "read", Path: path, Err: err}
	}

	g := &GeneralSettings{}
	if err := yaml.UnmarshalStrict(expandEnv(b), g); err != nil {
		return nil, fmt.Errorf("general settings %s: %w: %v", path, tperrors.ErrIncorrectInput, err)
	}
	if g.Version == "" || g.ReaderSettingsPath == "" {
		return nil, fmt.Errorf("general settings %s: %w: missing required keys version, reader_settings_path",
			path, tperrors.ErrIncorrectInput)
	}
	g.version, err = gover.NewVersion(g.Version)
	if err != nil {
		return nil, fmt.Errorf("general settings %s: %w: version %q: %v", path, tperrors.ErrIncorrectInput, g.Version, err)
	}
	return g, nil
}

// SemVer returns the parsed program version.
func (g *GeneralSettings) SemVer() *gover.Version {
	return g.version
}
