// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package transport

import (
	"fmt"
	"strings"
	"time"

	"github.com/scrapli/scrapligo/driver/network"
	"github.com/scrapli/scrapligo/driver/options"
	scraplilogging "github.com/scrapli/scrapligo/logging"
	"github.com/scrapli/scrapligo/platform"
	scraplitransport "github.com/scrapli/scrapligo/transport"
	"github.com/scrapli/scrapligo/util"
	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/types"
)

// DefaultTimeoutOps bounds a single command. Long show commands on
// slow consoles need the generous default.
const DefaultTimeoutOps = 90 * time.Second

// Platforms maps the device_ios name without its transport suffix to the
// scrapligo platform.
var Platforms = map[string]string{
	"cisco_ios":   "cisco_iosxe",
	"cisco_xe":    "cisco_iosxe",
	"cisco_iosxe": "cisco_iosxe",
	"cisco_nxos":  "cisco_nxos",
	"cisco_xr":    "cisco_iosxr",
	"cisco_iosxr": "cisco_iosxr",
}

// ScrapliOptions configure a scrapligo backed session.
type ScrapliOptions struct {
	Platform      string
	Port          int
	Telnet        bool
	AuthUsername  string
	AuthPassword  string
	AuthSecondary string
	AuthStrictKey bool
	TimeoutOps    time.Duration
}

// OptionsFor derives the session options of target t from its device settings.
func OptionsFor(t types.Target) (*ScrapliOptions, error) {
	d := t.Device
	base := strings.TrimSuffix(strings.TrimSuffix(d.IOS, types.TelnetSuffix), types.SSHSuffix)
	p, ok := Platforms[base]
	if !ok {
		return nil, fmt.Errorf("%w: unable to find scrapli platform for device_ios %q", tperrors.ErrIncorrectInput, d.IOS)
	}
	return &ScrapliOptions{
		Platform:      p,
		Port:          t.Port,
		Telnet:        d.Telnet(),
		AuthUsername:  d.Username,
		AuthPassword:  d.Password,
		AuthSecondary: d.Password,
		TimeoutOps:    DefaultTimeoutOps,
	}, nil
}

func (o *ScrapliOptions) driverOptions() ([]util.Option, error) {
	li, err := scraplilogging.NewInstance(
		scraplilogging.WithLevel("debug"),
		scraplilogging.WithLogger(log.Debug),
	)
	if err != nil {
		return nil, err
	}

	opts := []util.Option{
		options.WithPort(o.Port),
		options.WithTimeoutOps(o.TimeoutOps),
		options.WithLogger(li),
	}
	if o.Telnet {
		opts = append(opts, options.WithTransportType(scraplitransport.TelnetTransport))
	} else {
		opts = append(opts, options.WithTransportType(scraplitransport.StandardTransport))
	}
	if !o.AuthStrictKey {
		opts = append(opts, options.WithAuthNoStrictKey())
	}
	if o.AuthUsername == "" {
		// console lines without login drop straight into the exec prompt
		opts = append(opts, options.WithAuthBypass())
	} else {
		opts = append(opts,
			options.WithAuthUsername(o.AuthUsername),
			options.WithAuthPassword(o.AuthPassword),
		)
	}
	if o.AuthSecondary != "" {
		opts = append(opts, options.WithAuthSecondary(o.AuthSecondary))
	}
	return opts, nil
}

// ScrapliSession is a Session over a scrapligo network driver.
type ScrapliSession struct {
	Driver  *network.Driver
	Options *ScrapliOptions
	host    string
}

// NewScrapliSession creates the driver for host. It does not connect.
func NewScrapliSession(host string, o *ScrapliOptions) (*ScrapliSession, error) {
	opts, err := o.driverOptions()
	if err != nil {
		return nil, err
	}
	p, err := platform.NewPlatform(o.Platform, host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create platform: %w", host, err)
	}
	d, err := p.GetNetworkDriver()
	if err != nil {
		return nil, fmt.Errorf("%s: could not create the driver: %w", host, err)
	}
	return &ScrapliSession{Driver: d, Options: o, host: host}, nil
}

// DialScrapli is the Dialer used against real devices.
func DialScrapli(t types.Target) (Session, error) {
	o, err := OptionsFor(t)
	if err != nil {
		return nil, err
	}
	return NewScrapliSession(t.IP, o)
}

func (s *ScrapliSession) Open() error {
	if err := s.Driver.Open(); err != nil {
		return fmt.Errorf("%s:%d: failed to open driver: %w", s.host, s.Options.Port, err)
	}
	log.Debugf("connected to %s:%d", s.host, s.Options.Port)
	return nil
}

func (s *ScrapliSession) Send(command string) (*Response, error) {
	r, err := s.Driver.SendCommand(command)
	if err != nil {
		return nil, err
	}
	return &Response{Command: command, Output: r.Result, Failed: r.Failed}, nil
}

func (s *ScrapliSession) Configure(lines []string) ([]*Response, error) {
	mr, err := s.Driver.SendConfigs(lines)
	if err != nil {
		return nil, err
	}
	out := make([]*Response, 0, len(mr.Responses))
	for _, r := range mr.Responses {
		out = append(out, &Response{Command: r.Input, Output: r.Result, Failed: r.Failed})
	}
	return out, nil
}

func (s *ScrapliSession) Prompt() (string, error) {
	return s.Driver.GetPrompt()
}

func (s *ScrapliSession) Close() error {
	err := s.Driver.Close()
	log.Debugf("connection to %s:%d closed", s.host, s.Options.Port)
	return err
}
