// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tperrors "github.com/toporecover/toporecover/errors"
)

func TestLoadGeneralSettings(t *testing.T) {
	g, err := LoadGeneralSettings("testdata/general.yml")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", g.Version)
	assert.Equal(t, "settings/reader_settings.yml", g.ReaderSettingsPath)
	assert.Equal(t, []int{1, 2, 0}, g.SemVer().Segments())
}

func TestLoadGeneralSettingsErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "missing_path", content: "version: 1.0.0\n", want: tperrors.ErrIncorrectInput},
		{name: "bad_version", content: "version: one\nreader_settings_path: x.yml\n", want: tperrors.ErrIncorrectInput},
		{name: "unknown_key", content: "version: 1.0.0\nreader_settings_path: x.yml\nedit: true\n", want: tperrors.ErrIncorrectInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(dir, tt.name+".yml")
			require.NoError(t, os.WriteFile(p, []byte(tt.content), 0o644))
			_, err := LoadGeneralSettings(p)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := LoadGeneralSettings(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, tperrors.ErrFileNotFound))
}
