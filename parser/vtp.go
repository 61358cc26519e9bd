// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"strconv"
	"strings"
)

// keys of the vtp status output mapped to the command that restores them
var vtpCommands = map[string]string{
	"VTP Operating Mode":  "vtp mode",
	"VTP Domain Name":     "vtp domain",
	"VTP Password":        "vtp password",
	"VTP version running": "vtp version",
}

const vtpRevisionKey = "Configuration Revision"

// VTP is the VTP state read from vtp status output.
type VTP struct {
	// Commands holds the restore commands in the order their keys appeared.
	Commands []string
	// Revision is the configuration revision, 0 when absent or malformed.
	Revision int
	// HasRevision is set when the revision line was present.
	HasRevision bool
	// MalformedRevision holds the raw revision value when it was not a number.
	MalformedRevision string
}

// ExtractVTP reads key: value lines of vtp status and vtp password output.
func ExtractVTP(lines []string) VTP {
	var v VTP
	for _, l := range lines {
		key, value, ok := strings.Cut(l, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if key == vtpRevisionKey {
			v.HasRevision = true
			n, err := strconv.Atoi(value)
			if err != nil {
				v.Revision = 0
				v.MalformedRevision = value
				continue
			}
			v.Revision = n
			continue
		}
		cmd, ok := vtpCommands[key]
		if !ok || value == "" {
			continue
		}
		v.Commands = append(v.Commands, cmd+" "+value)
	}
	return v
}

// Configured reports whether the VTP database was ever changed.
func (v VTP) Configured() bool {
	return v.HasRevision && v.Revision > 0
}

// Render returns the VTP commands, or nothing when VTP is not configured.
func (v VTP) Render() string {
	if !v.Configured() || len(v.Commands) == 0 {
		return ""
	}
	return strings.Join(v.Commands, "\n") + "\n"
}
