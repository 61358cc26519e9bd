// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// briefRow renders a show ip interface brief row. The status column starts 50
// characters after the interface name.
func briefRow(name, status, proto string) string {
	return fmt.Sprintf("%-23s%-16s%-4s%-7s%-22s%s", name, "unassigned", "YES", "unset", status, proto)
}

const briefHeader = "Interface              IP-Address      OK? Method Status                Protocol"

type section struct {
	name  string
	lines []string
}

func buildCapture(sections ...section) string {
	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(StartMarker(s.name) + "\n")
		for _, l := range s.lines {
			sb.WriteString(l + "\n")
		}
		sb.WriteString(EndMarker(s.name) + "\n")
	}
	return sb.String()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", p, err)
	}
	return p
}

var switchRunning = []string{
	"Building configuration...",
	"",
	"Current configuration : 1542 bytes",
	"!",
	"version 15.2",
	"service timestamps debug datetime msec",
	"hostname SW1",
	"!",
	"no ip domain-lookup",
	"!",
	"interface GigabitEthernet0/1",
	" description uplink",
	" switchport mode trunk",
	"!",
	"interface GigabitEthernet0/2",
	" shutdown",
	"!",
	"interface Vlan10",
	" ip address 10.0.10.1 255.255.255.0",
	"!",
	"router ospf 1",
	" network 10.0.10.0 0.0.0.255 area 0",
	"!",
	"ip access-list extended WEB",
	" permit tcp any any eq 80",
	"!",
	"line con 0",
	" logging synchronous",
	"line vty 0 4",
	" login",
	"!",
	"end",
}

var switchInterfaces = []string{
	briefHeader,
	briefRow("GigabitEthernet0/1", "up", "up"),
	briefRow("GigabitEthernet0/2", "administratively down", "down"),
	briefRow("Vlan10", "up", "up"),
}

var switchVLANs = []string{
	"",
	"VLAN Name                             Status    Ports",
	"---- -------------------------------- --------- -------------------------------",
	"1    default                          active    Gi0/3, Gi0/4, Gi0/5, Gi0/6",
	"                                                Gi0/7, Gi0/8",
	"10   SALES                            active    Gi0/9",
	"20   ENGINEERING                      active",
	"1002 fddi-default                     act/unsup",
	"1003 token-ring-default               act/unsup",
}

var switchVTP = []string{
	"VTP Version capable             : 1 to 3",
	"VTP version running             : 2",
	"VTP Domain Name                 : LAB",
	"VTP Pruning Mode                : Disabled",
	"VTP Operating Mode              : Server",
	"Configuration Revision          : 4",
	"VTP Password: secret",
}

var switchMatchlist = []string{
	"Building configuration...",
	"Current configuration : \\d+ bytes",
	"version .*",
	"end",
}
