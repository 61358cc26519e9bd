// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package transport

import (
	"regexp"
	"strings"

	"github.com/toporecover/toporecover/types"
)

// Response is the outcome of one command sent to a device.
type Response struct {
	Command string
	Output  string
	// Failed is set when the device rejected the command.
	Failed error
}

// Session is an open CLI session to one device.
type Session interface {
	// Open connects and authenticates.
	Open() error
	// Send runs command in the current mode and returns its output.
	Send(command string) (*Response, error)
	// Configure enters configuration mode and sends lines one by one.
	Configure(lines []string) ([]*Response, error)
	// Prompt returns the current device prompt.
	Prompt() (string, error)
	Close() error
}

// Dialer creates a session to the target device. The session is not open yet.
type Dialer func(t types.Target) (Session, error)

// ExecMode is the CLI mode a device prompt shows.
type ExecMode int

const (
	UserExec ExecMode = iota
	PrivilegedExec
	ConfigExec
)

func (m ExecMode) String() string {
	switch m {
	case UserExec:
		return "user"
	case ConfigExec:
		return "configuration"
	default:
		return "privileged"
	}
}

var (
	userPromptRe   = regexp.MustCompile(`.+>`)
	configPromptRe = regexp.MustCompile(`.+\)#`)
)

// ModeFromPrompt classifies prompt. Anything that is neither a user nor a
// configuration prompt is taken as privileged.
func ModeFromPrompt(prompt string) ExecMode {
	prompt = strings.TrimSpace(prompt)
	switch {
	case userPromptRe.MatchString(prompt):
		return UserExec
	case configPromptRe.MatchString(prompt):
		return ConfigExec
	default:
		return PrivilegedExec
	}
}

// StripPrompt removes trailing whitespace and a trailing prompt from output.
func StripPrompt(output, prompt string) string {
	output = strings.TrimRight(output, " \t\r\n")
	prompt = strings.TrimSpace(prompt)
	if prompt != "" {
		output = strings.TrimSuffix(output, prompt)
		output = strings.TrimRight(output, " \t\r\n")
	}
	return output
}
