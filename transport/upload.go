// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package transport

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/types"
)

// Uploader replays a normalized configuration file onto a device.
type Uploader struct {
	Dial Dialer
}

// UploadResult counts the lines sent and the lines the device rejected.
type UploadResult struct {
	Lines  int
	Failed int
}

// Upload sends every non-blank line of the file by path to t in
// configuration mode. Rejected lines are logged and do not stop the upload.
func (u *Uploader) Upload(ctx context.Context, path string, t types.Target) (*UploadResult, error) {
	lines, err := readConfigLines(path)
	if err != nil {
		return nil, err
	}
	l := log.WithFields(log.Fields{"ip": t.IP, "port": t.Port})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := u.Dial(t)
	if err != nil {
		return nil, err
	}
	if err := s.Open(); err != nil {
		return nil, err
	}
	defer func() {
		if err := s.Close(); err != nil {
			l.Debugf("failed to close session: %v", err)
		}
	}()

	if prompt, err := s.Prompt(); err == nil {
		l.Debugf("prompt %q, %s mode", prompt, ModeFromPrompt(prompt))
	}

	resps, err := s.Configure(lines)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send configuration to %s", t)
	}

	res := &UploadResult{Lines: len(lines)}
	for _, r := range resps {
		if r.Failed != nil {
			res.Failed++
			l.Warnf("command failed: %q: %s", r.Command, strings.TrimSpace(r.Output))
		}
	}
	l.Infof("%d lines sent, %d failed", res.Lines, res.Failed)
	return res, nil
}

func readConfigLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(tperrors.ErrFileNotFound, "configuration %s", path)
	}
	if err != nil {
		return nil, &tperrors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &tperrors.IOError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}
