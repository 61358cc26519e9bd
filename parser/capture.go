// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tperrors "github.com/toporecover/toporecover/errors"
)

// section names used by the engine
const (
	SectionRunning   = "running"
	SectionInterface = "interface"
	SectionVLAN      = "vlan"
	SectionVTP       = "vtp"
)

// StartMarker returns the line opening a section of a raw capture.
func StartMarker(section string) string {
	return fmt.Sprintf("** start %s **", section)
}

// EndMarker returns the line closing a section of a raw capture.
func EndMarker(section string) string {
	return fmt.Sprintf("** end %s **", section)
}

// Capture is the raw text of one device session, split into lines.
type Capture struct {
	Lines []string
}

// NewCapture splits text into capture lines. Carriage returns are dropped.
func NewCapture(text string) *Capture {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return &Capture{}
	}
	return &Capture{Lines: strings.Split(text, "\n")}
}

// ReadCapture reads a capture from r.
func ReadCapture(r io.Reader) (*Capture, error) {
	c := &Capture{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		c.Lines = append(c.Lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCapture reads the capture stored in file path.
func LoadCapture(path string) (*Capture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &tperrors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	c, err := ReadCapture(f)
	if err != nil {
		return nil, &tperrors.IOError{Op: "read", Path: path, Err: err}
	}
	return c, nil
}

// Index returns the index of the first line at or after from that equals marker
// once surrounding whitespace is trimmed, or -1.
func (c *Capture) Index(marker string, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(c.Lines); i++ {
		if strings.TrimSpace(c.Lines[i]) == marker {
			return i
		}
	}
	return -1
}

// Section returns the lines strictly between the start and end markers of section.
// ok is false when the start marker is absent. A section without an end marker
// runs to the end of the capture.
func (c *Capture) Section(section string) (lines []string, ok bool) {
	start := c.Index(StartMarker(section), 0)
	if start < 0 {
		return nil, false
	}
	end := c.Index(EndMarker(section), start+1)
	if end < 0 {
		end = len(c.Lines)
	}
	return c.Lines[start+1 : end], true
}

// Running returns the body of the running section. The body begins after the
// start marker, or after the leading device-name line when the capture has no
// start marker, and ends before the end marker, which is required.
func (c *Capture) Running() ([]string, error) {
	end := c.Index(EndMarker(SectionRunning), 0)
	if end < 0 {
		return nil, &tperrors.StructuralError{Section: SectionRunning, Marker: EndMarker(SectionRunning)}
	}
	start := c.Index(StartMarker(SectionRunning), 0)
	if start < 0 || start > end {
		start = 0
	}
	if start+1 > end {
		return nil, nil
	}
	return c.Lines[start+1 : end], nil
}
