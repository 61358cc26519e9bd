// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
)

// Matchlist is an ordered, immutable list of noise patterns.
// A line is noise when, leading whitespace aside, it consists of one or
// more repetitions of a pattern.
type Matchlist struct {
	patterns []string
	res      []*regexp.Regexp
}

// NewMatchlist compiles patterns. A pattern that is not a valid regular
// expression is matched literally.
func NewMatchlist(patterns []string) *Matchlist {
	m := &Matchlist{}
	for _, p := range patterns {
		p = strings.TrimRight(p, "\r\n")
		if strings.TrimSpace(p) == "" {
			continue
		}
		re, err := regexp.Compile(`^\s*(?:` + p + `)+\s*$`)
		if err != nil {
			log.Debugf("matchlist pattern %q is not a regexp, matching it literally: %v", p, err)
			re = regexp.MustCompile(`^\s*(?:` + regexp.QuoteMeta(p) + `)+\s*$`)
		}
		m.patterns = append(m.patterns, p)
		m.res = append(m.res, re)
	}
	return m
}

// ReadMatchlist reads one pattern per non-empty line from r.
func ReadMatchlist(r io.Reader) (*Matchlist, error) {
	var patterns []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		patterns = append(patterns, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewMatchlist(patterns), nil
}

// LoadMatchlist reads the matchlist file by path.
func LoadMatchlist(path string) (*Matchlist, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("matchlist %s: %w", path, tperrors.ErrFileNotFound)
	}
	if err != nil {
		return nil, &tperrors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	m, err := ReadMatchlist(f)
	if err != nil {
		return nil, &tperrors.IOError{Op: "read", Path: path, Err: err}
	}
	return m, nil
}

// Patterns returns a copy of the loaded patterns in file order.
func (m *Matchlist) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// Len returns the number of patterns.
func (m *Matchlist) Len() int {
	if m == nil {
		return 0
	}
	return len(m.res)
}

// Match reports whether line is noise.
func (m *Matchlist) Match(line string) bool {
	if m == nil {
		return false
	}
	for _, re := range m.res {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// Strip applies every pattern in order to text, dropping the lines it matches.
// Blank runs left behind collapse to a single blank line, so stripping twice
// gives the same result as stripping once.
func (m *Matchlist) Strip(text string) string {
	lines := strings.Split(text, "\n")
	for _, re := range m.resOrNil() {
		kept := lines[:0:0]
		for _, l := range lines {
			if re.MatchString(l) {
				continue
			}
			kept = append(kept, l)
		}
		lines = kept
	}
	return strings.Join(collapseBlank(lines), "\n")
}

func (m *Matchlist) resOrNil() []*regexp.Regexp {
	if m == nil {
		return nil
	}
	return m.res
}
