// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package transport

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/types"
	"github.com/toporecover/toporecover/utils"
)

// Collector reads every device of Settings and stores one raw capture file
// per device in Dest.
type Collector struct {
	Settings *types.Settings
	Dest     string
	Dial     Dialer
	// Now stamps the capture file names. time.Now when nil.
	Now func() time.Time
}

// DeviceResult is the outcome of collecting one device.
type DeviceResult struct {
	Target   types.Target
	Path     string
	Sections int
	Err      error
}

// Collect visits the devices one after another. A device that fails is
// skipped, the others are still collected. Devices not visited because ctx
// is done report ctx.Err().
func (c *Collector) Collect(ctx context.Context) ([]DeviceResult, error) {
	if err := utils.CreateDirectory(c.Dest, 0o755); err != nil {
		return nil, &tperrors.IOError{Op: "mkdir", Path: c.Dest, Err: err}
	}

	targets := c.Settings.Targets()
	results := make([]DeviceResult, 0, len(targets))
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			results = append(results, DeviceResult{Target: t, Err: err})
			continue
		}
		l := log.WithFields(log.Fields{"ip": t.IP, "port": t.Port})
		path, n, err := c.collectDevice(t, l)
		if err != nil {
			l.Errorf("%v", err)
			l.Warn("device skipped")
		} else {
			l.Infof("%d sections saved to %s", n, path)
		}
		results = append(results, DeviceResult{Target: t, Path: path, Sections: n, Err: err})
	}
	return results, nil
}

func (c *Collector) collectDevice(t types.Target, l *log.Entry) (string, int, error) {
	s, err := c.Dial(t)
	if err != nil {
		return "", 0, err
	}
	if err := s.Open(); err != nil {
		return "", 0, err
	}
	defer func() {
		if err := s.Close(); err != nil {
			l.Debugf("failed to close session: %v", err)
		}
	}()

	prompt, err := s.Prompt()
	if err != nil {
		return "", 0, fmt.Errorf("failed to read prompt: %w", err)
	}
	l.Debugf("prompt %q, %s mode", prompt, ModeFromPrompt(prompt))

	ts := c.now()
	var sb strings.Builder
	sections := c.Settings.Sections(t.Device.Type)
	for _, name := range sections {
		var out []string
		for _, cmd := range c.Settings.Commands[t.Device.Type][name] {
			r, err := s.Send(cmd)
			if err != nil {
				return "", 0, fmt.Errorf("command %q: %w", cmd, err)
			}
			if r.Failed != nil {
				return "", 0, fmt.Errorf("%w: %q: %v", tperrors.ErrCommandFailed, cmd, r.Failed)
			}
			out = append(out, StripPrompt(utils.StripNonPrintChars(r.Output), prompt))
		}
		writeSection(&sb, name, strings.Join(out, "\n"))
	}

	path := filepath.Join(c.Dest, types.CaptureName(t.IP, t.Port, ts))
	if err := appendFile(path, sb.String()); err != nil {
		return "", 0, err
	}
	return path, len(sections), nil
}

func (c *Collector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func writeSection(sb *strings.Builder, name, output string) {
	fmt.Fprintf(sb, "** start %s **\n", name)
	sb.WriteString(output)
	fmt.Fprintf(sb, "\n** end %s **\n", name)
}

func appendFile(path, content string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &tperrors.IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &tperrors.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()
	if _, err := f.WriteString(content); err != nil {
		return &tperrors.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
