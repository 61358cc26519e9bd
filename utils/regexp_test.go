// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGetRegexpCaptureGroups(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		search  string
		want    map[string]string
		wantErr bool
		errStr  string
	}{
		{
			name:    "capture_file_name",
			pattern: `^(?P<ip>(\d{1,3}\.){3}\d{1,3})_(?P<port>\d{4,5})-`,
			search:  "172.16.0.117_5018-2025_11_25-12_46_23_raw_config.txt",
			want: map[string]string{
				"ip":   "172.16.0.117",
				"port": "5018",
			},
		},
		{
			name:    "partial_named_groups",
			pattern: `(?P<host>[\w-]+)(\(\w+\))?#`,
			search:  "SW1(config)#",
			want: map[string]string{
				"host": "SW1",
			},
		},
		{
			name:    "no_named_groups",
			pattern: `(\w+)>`,
			search:  "R1>",
			want:    map[string]string{},
		},
		{
			name:    "no_match",
			pattern: `(?P<revision>\d+)`,
			search:  "Configuration Revision : none",
			wantErr: true,
			errStr:  "does not match regexp",
		},
		{
			name:    "empty_search",
			pattern: `(?P<word>\w+)`,
			search:  "",
			wantErr: true,
			errStr:  "does not match regexp",
		},
		{
			name:    "multiple_same_named_groups",
			pattern: `(?P<octet>\d+)\.\d+\.\d+\.(?P<octet>\d+)`,
			search:  "10.0.0.1",
			want: map[string]string{
				"octet": "1", // last match wins
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := regexp.Compile(tt.pattern)
			if err != nil {
				t.Fatalf("failed to compile regex pattern %q: %v", tt.pattern, err)
			}

			got, err := GetRegexpCaptureGroups(r, tt.search)

			if (err != nil) != tt.wantErr {
				t.Fatalf("GetRegexpCaptureGroups() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr && err != nil {
				if tt.errStr != "" && !strings.Contains(err.Error(), tt.errStr) {
					t.Fatalf("expected error containing %q, got %q", tt.errStr, err.Error())
				}
				return
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
