// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tperrors "github.com/toporecover/toporecover/errors"
)

func TestLoadMatchlist(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadMatchlist(filepath.Join(dir, "nope"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, tperrors.ErrFileNotFound), "got %v", err)
	})

	t.Run("empty_file", func(t *testing.T) {
		p := writeFile(t, dir, "empty", "")
		m, err := LoadMatchlist(p)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
		text := "hostname R1\n\ninterface Gi0/1\n description x"
		assert.Equal(t, text, m.Strip(text))
	})

	t.Run("order_kept_and_blank_lines_skipped", func(t *testing.T) {
		p := writeFile(t, dir, "list", "end\r\n\nversion .*\n  \nno ip domain-lookup\n")
		m, err := LoadMatchlist(p)
		require.NoError(t, err)
		assert.Equal(t, []string{"end", "version .*", "no ip domain-lookup"}, m.Patterns())
	})
}

func TestMatchlistMatch(t *testing.T) {
	m := NewMatchlist([]string{"version .*", "end", "ip http server", "a(b"})

	tests := map[string]bool{
		"version 15.2":        true,
		"  version 15.2":      true,
		"end":                 true,
		"endend":              true,
		"end ":                true,
		"ending":              false,
		"ip http server":      true,
		"ip http server x":    false,
		" no ip http server":  false,
		"a(b":                 true,
		"hostname end":        false,
		"":                    false,
		"interface Gi0/1":     false,
		"ip http secure-port": false,
	}
	for line, want := range tests {
		assert.Equal(t, want, m.Match(line), "line %q", line)
	}
}

func TestMatchlistStrip(t *testing.T) {
	m := NewMatchlist(switchMatchlist)
	text := strings.Join([]string{
		"Building configuration...",
		"",
		"Current configuration : 1542 bytes",
		"version 15.2",
		"hostname SW1",
		"",
		"",
		"end",
		"end",
	}, "\n")

	got := m.Strip(text)
	assert.Equal(t, "\nhostname SW1\n", got)
}

func TestMatchlistStripIdempotent(t *testing.T) {
	lists := [][]string{
		nil,
		switchMatchlist,
		{"\\s*", "hostname .*"},
		{"interface .*", " description .*", "!"},
	}
	texts := []string{
		"",
		strings.Join(switchRunning, "\n"),
		strings.Join(Normalize(switchRunning, NormalizeOptions{}), "\n"),
		"a\n\n\n\nb\nend\nend\n\n",
	}
	for _, l := range lists {
		m := NewMatchlist(l)
		for _, text := range texts {
			once := m.Strip(text)
			assert.Equal(t, once, m.Strip(once), "patterns %q", l)
		}
	}
}

func TestNilMatchlist(t *testing.T) {
	var m *Matchlist
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Match("end"))
	assert.Equal(t, "a\n\nb", m.Strip("a\n\n\nb"))
	assert.Nil(t, m.Patterns())
}
