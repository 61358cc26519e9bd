// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultVLAN is never recreated.
	DefaultVLAN = 1
	// FirstReservedVLAN is the first ID past the normal range.
	FirstReservedVLAN = 1001
)

// VLAN is one user VLAN of the vlan brief table.
type VLAN struct {
	ID   int
	Name string
}

// Command returns the configuration lines that recreate v.
func (v VLAN) Command() string {
	return fmt.Sprintf("vlan %d \nname %s\n", v.ID, v.Name)
}

// ExtractVLANs scans vlan brief table lines. Lines that do not start with a
// digit are skipped. The table is expected to list user VLANs first: the first
// row at or above FirstReservedVLAN ends the scan.
func ExtractVLANs(lines []string) []VLAN {
	var out []VLAN
	for _, l := range lines {
		id, fields, ok := vlanRow(l)
		if !ok {
			continue
		}
		if id >= FirstReservedVLAN {
			break
		}
		if id == DefaultVLAN || len(fields) < 2 {
			continue
		}
		out = append(out, VLAN{ID: id, Name: fields[1]})
	}
	return out
}

// vlanRow parses the leading VLAN id of a table row.
func vlanRow(l string) (int, []string, bool) {
	if l == "" || l[0] < '0' || l[0] > '9' {
		return 0, nil, false
	}
	fields := strings.Fields(l)
	n := 0
	for n < len(fields[0]) && fields[0][n] >= '0' && fields[0][n] <= '9' {
		n++
	}
	id, err := strconv.Atoi(fields[0][:n])
	if err != nil {
		return 0, nil, false
	}
	return id, fields, true
}

// VLANCommands renders the commands for vlans.
func VLANCommands(vlans []VLAN) string {
	var sb strings.Builder
	for _, v := range vlans {
		sb.WriteString(v.Command())
	}
	return sb.String()
}
