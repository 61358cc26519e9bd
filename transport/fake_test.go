// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package transport

import (
	"errors"

	"github.com/toporecover/toporecover/types"
)

// fakeSession answers commands from a fixed table.
type fakeSession struct {
	prompt  string
	outputs map[string]string
	// commands in rejected fail on the device side
	rejected map[string]bool
	openErr  error

	opened     bool
	closed     bool
	sent       []string
	configured []string
}

func (f *fakeSession) Open() error {
	if f.openErr != nil {
		return f.openErr
	}
	f.opened = true
	return nil
}

func (f *fakeSession) Send(command string) (*Response, error) {
	if !f.opened {
		return nil, errors.New("session not open")
	}
	f.sent = append(f.sent, command)
	r := &Response{Command: command, Output: f.outputs[command]}
	if f.rejected[command] {
		r.Output = "% Invalid input detected at '^' marker."
		r.Failed = errors.New("invalid input")
	}
	return r, nil
}

func (f *fakeSession) Configure(lines []string) ([]*Response, error) {
	if !f.opened {
		return nil, errors.New("session not open")
	}
	var out []*Response
	for _, l := range lines {
		f.configured = append(f.configured, l)
		r := &Response{Command: l}
		if f.rejected[l] {
			r.Output = "% Invalid input detected at '^' marker."
			r.Failed = errors.New("invalid input")
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeSession) Prompt() (string, error) {
	return f.prompt, nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

// fakeDialer hands out the session registered for a target address.
func fakeDialer(sessions map[string]*fakeSession) Dialer {
	return func(t types.Target) (Session, error) {
		s, ok := sessions[t.String()]
		if !ok {
			return nil, errors.New("connection refused")
		}
		return s, nil
	}
}
