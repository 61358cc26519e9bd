// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIsBlockHeader(t *testing.T) {
	tests := map[string]bool{
		"interface GigabitEthernet0/1":  true,
		"interface Vlan10":              true,
		"router ospf 1":                 true,
		"router bgp 65000":              true,
		"router rip":                    true,
		"router eigrp 10":               false,
		"line con 0":                    true,
		"line aux 0":                    true,
		"line vty 0 4":                  true,
		"ip access-list extended WEB":   true,
		"ip access-list standard 10":    true,
		"ip access-list logging":        false,
		" interface GigabitEthernet0/1": false,
		"interface":                     false,
		"hostname R1":                   false,
		"":                              false,
	}
	for line, want := range tests {
		assert.Equal(t, want, IsBlockHeader(line), "line %q", line)
	}
}

func TestExtract(t *testing.T) {
	lines := []string{
		"hostname R1",
		"",
		"interface Gi0/1",
		" description a",
		"",
		" ip address 10.0.0.1 255.255.255.0",
		"interface Gi0/2",
		"ip routing",
		"router ospf 1",
		"\tnetwork 10.0.0.0 0.0.0.255 area 0",
		"end",
	}
	d := Extract(lines)

	want := []Segment{
		{Line: "hostname R1"},
		{Line: ""},
		{Block: &Block{Header: "interface Gi0/1", Body: []string{" description a", "", " ip address 10.0.0.1 255.255.255.0"}}},
		{Block: &Block{Header: "interface Gi0/2"}},
		{Line: "ip routing"},
		{Block: &Block{Header: "router ospf 1", Body: []string{"\tnetwork 10.0.0.0 0.0.0.255 area 0"}}},
		{Line: "end"},
	}
	if diff := cmp.Diff(want, d.Segments); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"hostname R1", "", "ip routing", "end"}, d.CleanLines())

	var headers []string
	for _, b := range d.Blocks() {
		headers = append(headers, b.Header)
	}
	assert.Equal(t, []string{"interface Gi0/1", "interface Gi0/2", "router ospf 1"}, headers)
}

func TestExtractBlankLineOutsideBlockIsClean(t *testing.T) {
	d := Extract([]string{"", " stray indented line", "hostname R1"})
	assert.Empty(t, d.Blocks())
	assert.Equal(t, []string{"", " stray indented line", "hostname R1"}, d.CleanLines())
}

func TestExtractHeadersNeitherDroppedNorDuplicated(t *testing.T) {
	normalized := Normalize(switchRunning, NormalizeOptions{})

	var want []string
	for _, l := range normalized {
		if IsBlockHeader(l) {
			want = append(want, l)
		}
	}

	var got []string
	for _, b := range Extract(normalized).Blocks() {
		got = append(got, b.Header)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got, 7)
}

func TestBlockInterfaceName(t *testing.T) {
	b := &Block{Header: "interface GigabitEthernet0/1 "}
	assert.True(t, b.IsInterface())
	assert.Equal(t, "GigabitEthernet0/1", b.InterfaceName())

	r := &Block{Header: "router ospf 1"}
	assert.False(t, r.IsInterface())
}
