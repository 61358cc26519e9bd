// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"strings"
)

// DefaultAnchorKeywords are the leading keywords of block header lines.
var DefaultAnchorKeywords = []string{"line", "interface", "router", "ip access-list"}

// NormalizeOptions tune the line normalizer.
type NormalizeOptions struct {
	// AnchorKeywords overrides DefaultAnchorKeywords when not empty.
	AnchorKeywords []string
}

func (o NormalizeOptions) anchors() []string {
	if len(o.AnchorKeywords) > 0 {
		return o.AnchorKeywords
	}
	return DefaultAnchorKeywords
}

// Normalize drops comment and blank lines, puts one blank line in front of
// every block header and collapses blank runs.
func Normalize(lines []string, opts NormalizeOptions) []string {
	anchors := opts.anchors()
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if t == "" || strings.HasPrefix(t, "!") {
			continue
		}
		if hasAnchorKeyword(t, anchors) {
			out = append(out, "")
		}
		out = append(out, l)
	}
	return collapseBlank(out)
}

// hasAnchorKeyword reports whether the first token(s) of trimmed line t equal
// one of keywords.
func hasAnchorKeyword(t string, keywords []string) bool {
	for _, k := range keywords {
		if !strings.HasPrefix(t, k) {
			continue
		}
		rest := t[len(k):]
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			return true
		}
	}
	return false
}

func isBlank(l string) bool {
	return strings.TrimSpace(l) == ""
}

// collapseBlank replaces runs of two or more blank lines by one empty line.
func collapseBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	prevBlank := false
	for _, l := range lines {
		if isBlank(l) {
			if prevBlank {
				continue
			}
			prevBlank = true
			out = append(out, "")
			continue
		}
		prevBlank = false
		out = append(out, l)
	}
	return out
}
