// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// StatusColumnOffset is the distance from the start of an interface name in the
// interface status table to its status column. It matches the fixed width
// layout of the brief interface table the collector captures.
const StatusColumnOffset = 50

const (
	noShutdown = "no shutdown"
	exitLine   = "exit"
	bodyIndent = " "
)

// StatusTable is the text of the interface status section.
type StatusTable struct {
	text string
}

// NewStatusTable builds a status table from the interface section lines.
func NewStatusTable(lines []string) *StatusTable {
	return &StatusTable{text: strings.Join(lines, "\n")}
}

// AdminUp looks name up in the table. found is false when the name does not
// occur or the status column lies beyond the end of the table.
func (s *StatusTable) AdminUp(name string) (up, found bool) {
	if s == nil || name == "" {
		return false, false
	}
	i := strings.Index(s.text, name)
	if i < 0 || i+StatusColumnOffset >= len(s.text) {
		return false, false
	}
	return s.text[i+StatusColumnOffset] == 'u', true
}

// Reconciler rewrites block bodies before they are emitted.
type Reconciler struct {
	Status    *StatusTable
	Matchlist *Matchlist
	Logger    *log.Entry
}

// ReconcileStats counts what the reconciler did.
type ReconcileStats struct {
	Blocks       int
	Interfaces   int
	NoShutdowns  int
	LookupMisses int
}

// Reconcile returns a copy of b with blank, noise and trailing exit lines
// removed, a no shutdown line added to administratively up interfaces and a
// single exit line at the end.
func (r *Reconciler) Reconcile(b *Block, st *ReconcileStats) *Block {
	out := &Block{Header: b.Header}
	hasNoShut := false
	for _, l := range b.Body {
		t := strings.TrimSpace(l)
		if t == "" || r.Matchlist.Match(l) {
			continue
		}
		if t == noShutdown {
			hasNoShut = true
		}
		out.Body = append(out.Body, l)
	}
	for len(out.Body) > 0 && strings.TrimSpace(out.Body[len(out.Body)-1]) == exitLine {
		out.Body = out.Body[:len(out.Body)-1]
	}

	st.Blocks++
	if b.IsInterface() {
		st.Interfaces++
		name := b.InterfaceName()
		up, found := r.Status.AdminUp(name)
		switch {
		case !found:
			st.LookupMisses++
			r.logger().WithField("interface", name).Debug("interface not found in status table")
		case up && !hasNoShut:
			out.Body = append(out.Body, bodyIndent+noShutdown)
			st.NoShutdowns++
		}
	}

	out.Body = append(out.Body, bodyIndent+exitLine)
	return out
}

// Render reconciles every block of d and returns the running configuration text.
// Blocks are emitted in place with a blank line in front of each.
func (r *Reconciler) Render(d *Document) (string, ReconcileStats) {
	var st ReconcileStats
	var lines []string
	for _, s := range d.Segments {
		if s.Block == nil {
			lines = append(lines, s.Line)
			continue
		}
		if len(lines) > 0 && !isBlank(lines[len(lines)-1]) {
			lines = append(lines, "")
		}
		b := r.Reconcile(s.Block, &st)
		lines = append(lines, b.Header)
		lines = append(lines, b.Body...)
	}
	lines = collapseBlank(lines)
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return "", st
	}
	return strings.Join(lines, "\n") + "\n", st
}

func (r *Reconciler) logger() *log.Entry {
	if r.Logger != nil {
		return r.Logger
	}
	return log.NewEntry(log.StandardLogger())
}
