// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		opts  NormalizeOptions
		lines []string
		want  []string
	}{
		{
			name:  "comments_and_blank_lines_dropped",
			lines: []string{"!", "hostname R1", "   ! indented comment", "", "  ", "ip routing"},
			want:  []string{"hostname R1", "ip routing"},
		},
		{
			name: "blank_line_before_anchors",
			lines: []string{
				"hostname R1",
				"interface Gi0/1",
				" description a",
				"router ospf 1",
				"ip access-list standard X",
				"line vty 0 4",
			},
			want: []string{
				"hostname R1",
				"",
				"interface Gi0/1",
				" description a",
				"",
				"router ospf 1",
				"",
				"ip access-list standard X",
				"",
				"line vty 0 4",
			},
		},
		{
			name:  "blank_runs_collapse",
			lines: []string{"a", "!", "!", "interface Gi0/1", "!", "interface Gi0/2"},
			want:  []string{"a", "", "interface Gi0/1", "", "interface Gi0/2"},
		},
		{
			name:  "keyword_must_be_a_whole_token",
			lines: []string{"hostname R1", "interfaces-are-not-anchors", "lineup"},
			want:  []string{"hostname R1", "interfaces-are-not-anchors", "lineup"},
		},
		{
			name:  "custom_anchor_set",
			opts:  NormalizeOptions{AnchorKeywords: []string{"vlan"}},
			lines: []string{"hostname R1", "vlan 10", " name X", "interface Gi0/1"},
			want:  []string{"hostname R1", "", "vlan 10", " name X", "interface Gi0/1"},
		},
		{
			name:  "no_anchor_lines",
			lines: []string{"hostname R1", "ip routing"},
			want:  []string{"hostname R1", "ip routing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.lines, tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeNoAnchorsYieldsNoBlocks(t *testing.T) {
	d := Extract(Normalize([]string{"hostname R1", "no ip domain-lookup"}, NormalizeOptions{}))
	if n := len(d.Blocks()); n != 0 {
		t.Fatalf("expected no blocks, got %d", n)
	}
	if diff := cmp.Diff([]string{"hostname R1", "no ip domain-lookup"}, d.CleanLines()); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
