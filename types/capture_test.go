// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureName(t *testing.T) {
	ts := time.Date(2025, time.November, 5, 9, 4, 23, 0, time.UTC)
	name := CaptureName("172.16.0.117", 5018, ts)
	assert.Equal(t, "172.16.0.117_5018-2025_11_5-9_4_23_raw_config.txt", name)

	ip, port, err := ParseCaptureName(name)
	require.NoError(t, err)
	assert.Equal(t, "172.16.0.117", ip)
	assert.Equal(t, "5018", port)
}

func TestIsCaptureName(t *testing.T) {
	tests := map[string]bool{
		"172.16.0.117_5018-2025_11_25-12_46_23_raw_config.txt": true,
		"10.0.0.1_23-2024_1_2-3_4_5_raw_config.txt":            true,
		"10.0.0.1_23-2024_1_2-3_4_5_config.txt":                false,
		"10.0.0.1-2024_1_2-3_4_5_raw_config.txt":               false,
		"router1_23-2024_1_2-3_4_5_raw_config.txt":             false,
		"notes.txt":                                            false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsCaptureName(name), "name %q", name)
	}

	_, _, err := ParseCaptureName("notes.txt")
	assert.Error(t, err)
}
