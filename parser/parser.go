// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
)

// StageStatus is the outcome of one parse stage.
type StageStatus string

const (
	StageOK      StageStatus = "ok"
	StageEmpty   StageStatus = "empty"
	StageSkipped StageStatus = "skipped"
	StageFailed  StageStatus = "failed"
)

// Options configure a single parse.
type Options struct {
	// Input is the raw capture path.
	Input string
	// Output is the path of the normalized file. OutputPath(Input) when empty.
	Output string
	// Matchlist is the noise pattern list. An empty list strips nothing.
	Matchlist *Matchlist
	// IP and Port identify the device in logs only.
	IP   string
	Port string
	// RunID correlates the logs of one batch.
	RunID     string
	Normalize NormalizeOptions
}

// Result reports what a parse produced.
type Result struct {
	Input  string
	Output string

	Running StageStatus
	VLAN    StageStatus
	VTP     StageStatus

	Reconcile   ReconcileStats
	VLANs       int
	VTPCommands int
	Bytes       int64
}

// OutputPath derives the normalized file path from a raw capture path by
// dropping the raw_ token of its name.
func OutputPath(input string) string {
	dir, base := filepath.Split(input)
	return filepath.Join(dir, strings.Replace(base, "raw_", "", 1))
}

func (o *Options) logger() *log.Entry {
	f := log.Fields{"ip": o.IP, "port": o.Port}
	if o.RunID != "" {
		f["run"] = o.RunID
	}
	return log.WithFields(f)
}

// Parse normalizes the raw capture o.Input and writes the result to o.Output.
// A missing running end marker or interface start marker aborts the parse with
// a StructuralError. Missing vlan or vtp sections only leave their part of the
// output empty.
func Parse(ctx context.Context, o Options) (*Result, error) {
	if o.Output == "" {
		o.Output = OutputPath(o.Input)
	}
	l := o.logger()
	res := &Result{
		Input:   o.Input,
		Output:  o.Output,
		Running: StageFailed,
		VLAN:    StageSkipped,
		VTP:     StageSkipped,
	}

	c, err := LoadCapture(o.Input)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	running, st, err := RunningConfig(c, o.Matchlist, o.Normalize, l)
	if err != nil {
		l.Errorf("running config not parsed: %v", err)
		return res, err
	}
	res.Running = StageOK
	res.Reconcile = st
	l.Infof("running config parsed: %d blocks, %d no shutdown added", st.Blocks, st.NoShutdowns)

	if err := ctx.Err(); err != nil {
		return res, err
	}

	var vlanText string
	if lines, ok := c.Section(SectionVLAN); !ok {
		l.Warnf("no vlan section in capture, marker %q not found", StartMarker(SectionVLAN))
	} else {
		vlans := ExtractVLANs(lines)
		res.VLANs = len(vlans)
		if len(vlans) == 0 {
			res.VLAN = StageEmpty
			l.Warn("no vlan config received")
		} else {
			res.VLAN = StageOK
			vlanText = VLANCommands(vlans)
			l.Infof("vlan config parsed: %d vlans", len(vlans))
		}
	}

	var vtpText string
	if lines, ok := c.Section(SectionVTP); !ok {
		l.Warnf("no vtp section in capture, marker %q not found", StartMarker(SectionVTP))
	} else {
		v := ExtractVTP(lines)
		switch {
		case v.MalformedRevision != "":
			res.VTP = StageEmpty
			l.Warnf("vtp configuration revision %q is not a number, treating it as 0", v.MalformedRevision)
		case !v.HasRevision:
			res.VTP = StageEmpty
			l.Warn("vtp configuration revision not found")
		case !v.Configured():
			res.VTP = StageEmpty
			l.Warn("no vtp config received")
		default:
			res.VTP = StageOK
			vtpText = v.Render()
			res.VTPCommands = len(v.Commands)
			l.Info("vtp config parsed")
		}
	}

	n, err := writeOutput(o.Output, running, vlanText, vtpText)
	res.Bytes = n
	if err != nil {
		l.Errorf("output file not written: %v", err)
		return res, err
	}
	l.Infof("output file %s saved", o.Output)

	return res, nil
}

// RunningConfig normalizes, strips and reconciles the running section of c.
func RunningConfig(c *Capture, m *Matchlist, no NormalizeOptions, l *log.Entry) (string, ReconcileStats, error) {
	lines, err := c.Running()
	if err != nil {
		return "", ReconcileStats{}, err
	}
	ifLines, ok := c.Section(SectionInterface)
	if !ok {
		return "", ReconcileStats{}, &tperrors.StructuralError{
			Section: SectionInterface,
			Marker:  StartMarker(SectionInterface),
		}
	}

	normalized := Normalize(lines, no)
	stripped := strings.Split(m.Strip(strings.Join(normalized, "\n")), "\n")
	doc := Extract(stripped)

	r := &Reconciler{
		Status:    NewStatusTable(ifLines),
		Matchlist: m,
		Logger:    l,
	}
	text, st := r.Render(doc)
	return text, st, nil
}

func writeOutput(path string, parts ...string) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, &tperrors.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &tperrors.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	w := bufio.NewWriter(f)
	for _, p := range parts {
		m, werr := w.WriteString(p)
		n += int64(m)
		if werr != nil {
			return n, &tperrors.IOError{Op: "write", Path: path, Err: werr}
		}
	}
	if ferr := w.Flush(); ferr != nil {
		return n, &tperrors.IOError{Op: "write", Path: path, Err: ferr}
	}
	return n, nil
}
