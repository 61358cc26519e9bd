// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"regexp"
	"strings"
)

// anchor patterns of block header lines
var anchorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^interface\s+\S`),
	regexp.MustCompile(`^router\s+(ospf|rip|bgp)\b`),
	regexp.MustCompile(`^line\s+(con|aux|vty)\b`),
	regexp.MustCompile(`^ip\s+access-list\s+(extended|standard)\b`),
}

// IsBlockHeader reports whether line opens a block.
// Indented lines never do.
func IsBlockHeader(line string) bool {
	for _, p := range anchorPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Block is one top-level configuration statement with its indented sub-lines.
type Block struct {
	Header string
	Body   []string
}

// IsInterface reports whether b is an interface block.
func (b *Block) IsInterface() bool {
	return strings.HasPrefix(b.Header, "interface ")
}

// InterfaceName returns the name following the interface keyword.
func (b *Block) InterfaceName() string {
	return strings.TrimSpace(strings.TrimPrefix(b.Header, "interface "))
}

// Segment is either a clean line or a block. Exactly one of the two is set.
type Segment struct {
	Line  string
	Block *Block
}

// Document is a running configuration split into segments, in source order.
type Document struct {
	Segments []Segment
}

// CleanLines returns the lines that belong to no block, in source order.
func (d *Document) CleanLines() []string {
	var out []string
	for _, s := range d.Segments {
		if s.Block == nil {
			out = append(out, s.Line)
		}
	}
	return out
}

// Blocks returns the blocks in the order their headers appeared.
func (d *Document) Blocks() []*Block {
	var out []*Block
	for _, s := range d.Segments {
		if s.Block != nil {
			out = append(out, s.Block)
		}
	}
	return out
}

type scanState int

const (
	outsideBlock scanState = iota
	insideBlock
)

// Extract groups header lines and their continuation lines into blocks.
// A blank or indented line joins the open block; any other line closes it
// and is then evaluated on its own.
func Extract(lines []string) *Document {
	d := &Document{}
	state := outsideBlock
	var cur *Block

	closeBlock := func() {
		if cur != nil {
			d.Segments = append(d.Segments, Segment{Block: cur})
		}
		cur = nil
		state = outsideBlock
	}

	for _, l := range lines {
		if IsBlockHeader(l) {
			closeBlock()
			cur = &Block{Header: l}
			state = insideBlock
			continue
		}
		if state == insideBlock && (isBlank(l) || startsWithSpace(l)) {
			cur.Body = append(cur.Body, l)
			continue
		}
		closeBlock()
		d.Segments = append(d.Segments, Segment{Line: l})
	}
	closeBlock()

	return d
}

func startsWithSpace(l string) bool {
	return l != "" && (l[0] == ' ' || l[0] == '\t')
}
