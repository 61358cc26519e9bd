// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"os"
	"path/filepath"

	tperrors "github.com/toporecover/toporecover/errors"
	"gopkg.in/yaml.v2"
)

// TemplateSettings returns the starter settings written by WriteTemplate.
func TemplateSettings() *Settings {
	return &Settings{
		Devices: map[string]map[string]*Device{
			"192.0.2.1": {
				"23": {
					Type:     DeviceTypeRouter,
					IOS:      "cisco_ios_telnet",
					Username: "admin",
					Password: "${ROUTER_PASSWORD}",
				},
			},
			"192.0.2.2": {
				"22": {
					Type:     DeviceTypeSwitch,
					IOS:      "cisco_ios_ssh",
					Username: "admin",
					Password: "${SWITCH_PASSWORD}",
				},
			},
		},
		Commands: map[string]map[string][]string{
			DeviceTypeRouter: {
				"running":   {"show running-config"},
				"interface": {"show ip interface brief"},
			},
			DeviceTypeSwitch: {
				"running":   {"show running-config"},
				"interface": {"show ip interface brief"},
				"vlan":      {"show vlan brief"},
				"vtp":       {"show vtp status", "show vtp password"},
			},
		},
	}
}

// WriteTemplate writes the starter settings file to path, creating parent
// directories as needed.
func WriteTemplate(path string) error {
	b, err := yaml.Marshal(TemplateSettings())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &tperrors.IOError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &tperrors.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
