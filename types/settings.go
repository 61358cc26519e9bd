// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	tperrors "github.com/toporecover/toporecover/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// device types
const (
	DeviceTypeRouter = "router"
	DeviceTypeSwitch = "switch"
)

// suffixes of device_ios selecting the session transport
const (
	TelnetSuffix = "_telnet"
	SSHSuffix    = "_ssh"
)

var (
	ipv4Re     = regexp.MustCompile(`^(((25[0-5]|(2[0-4]|1\d|[1-9]|)\d)\.){3}(25[0-5]|(2[0-4]|1\d|[1-9]|)\d)$|localhost$)`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9._\-@+$~!%:/\\]{1,64}$`)
	passwordRe = regexp.MustCompile(`^[\x20-\x7E]{0,128}$`)
	// only the braced form is expanded, a bare $ is a legal password character
	envRefRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)
)

// Settings is the collector inventory: the devices to read and the
// commands to run on them, grouped by device type and capture section.
type Settings struct {
	// Devices maps an ip address to its ports.
	Devices map[string]map[string]*Device `yaml:"devices"`
	// Commands maps a device type to its sections and their commands.
	Commands map[string]map[string][]string `yaml:"commands"`
}

// Device describes one device reachable on ip:port.
type Device struct {
	Type     string `yaml:"device_type"`
	IOS      string `yaml:"device_ios"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Telnet reports whether the device is reached over telnet.
func (d *Device) Telnet() bool {
	return strings.HasSuffix(d.IOS, TelnetSuffix)
}

// Target is a device with its address.
type Target struct {
	IP     string
	Port   int
	Device *Device
}

func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.IP, t.Port)
}

// LoadSettings reads the settings file by path. When envFile is set, it is
// loaded into the environment first. ${VAR} references are expanded before
// the strict YAML decoding, and the result is validated.
func LoadSettings(path, envFile string) (*Settings, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		log.Debugf("loaded env file %s", envFile)
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("settings %s: %w", path, tperrors.ErrFileNotFound)
	}
	if err != nil {
		return nil, &tperrors.IOError{Op: "read", Path: path, Err: err}
	}

	s, err := ParseSettings(b)
	if err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes and validates settings from YAML or JSON bytes.
func ParseSettings(b []byte) (*Settings, error) {
	s := &Settings{}
	if err := yaml.UnmarshalStrict(expandEnv(b), s); err != nil {
		return nil, fmt.Errorf("%w: %v", tperrors.ErrIncorrectInput, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func expandEnv(b []byte) []byte {
	return envRefRe.ReplaceAllFunc(b, func(ref []byte) []byte {
		name := envRefRe.FindSubmatch(ref)[1]
		if v, ok := os.LookupEnv(string(name)); ok {
			return []byte(v)
		}
		return ref
	})
}

// Validate checks every device and command group and returns all
// violations joined together.
func (s *Settings) Validate() error {
	var errs []error
	if len(s.Devices) == 0 {
		errs = append(errs, fmt.Errorf("%w: no devices defined", tperrors.ErrIncorrectInput))
	}
	if s.Commands == nil {
		errs = append(errs, fmt.Errorf("%w: no commands defined", tperrors.ErrIncorrectInput))
	} else {
		for _, t := range []string{DeviceTypeRouter, DeviceTypeSwitch} {
			if _, ok := s.Commands[t]; !ok {
				errs = append(errs, fmt.Errorf("%w: commands: %s commands not found", tperrors.ErrIncorrectInput, t))
			}
		}
	}
	for t, sections := range s.Commands {
		if !ValidDeviceType(t) {
			errs = append(errs, fmt.Errorf("%w: commands: device type %q is not supported", tperrors.ErrIncorrectInput, t))
		}
		for name, cmds := range sections {
			if strings.TrimSpace(name) == "" || strings.Contains(name, "*") {
				errs = append(errs, fmt.Errorf("%w: commands.%s: invalid section name %q", tperrors.ErrIncorrectInput, t, name))
			}
			if len(cmds) == 0 {
				errs = append(errs, fmt.Errorf("%w: commands.%s.%s: no commands", tperrors.ErrIncorrectInput, t, name))
			}
		}
	}

	for ip, ports := range s.Devices {
		if err := ValidateIP(ip); err != nil {
			errs = append(errs, fmt.Errorf("devices.%s: %w", ip, err))
		}
		for port, d := range ports {
			field := fmt.Sprintf("devices.%s.%s", ip, port)
			if _, err := ParsePort(port); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", field, err))
			}
			if d == nil {
				errs = append(errs, fmt.Errorf("%s: %w: empty device", field, tperrors.ErrIncorrectInput))
				continue
			}
			if err := d.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", field, err))
			}
		}
	}

	return errors.Join(errs...)
}

// Validate checks the fields of a single device.
func (d *Device) Validate() error {
	var errs []error
	if !ValidDeviceType(d.Type) {
		errs = append(errs, fmt.Errorf("%w: device_type %q is not supported, use %s or %s",
			tperrors.ErrIncorrectInput, d.Type, DeviceTypeRouter, DeviceTypeSwitch))
	}
	if !ValidIOS(d.IOS) {
		errs = append(errs, fmt.Errorf("%w: device_ios %q must end with %s or %s",
			tperrors.ErrIncorrectInput, d.IOS, TelnetSuffix, SSHSuffix))
	}
	if d.Username != "" && !usernameRe.MatchString(d.Username) {
		errs = append(errs, fmt.Errorf("%w: username %q must match %s",
			tperrors.ErrIncorrectInput, d.Username, usernameRe))
	}
	if !passwordRe.MatchString(d.Password) {
		errs = append(errs, fmt.Errorf("%w: password must be at most 128 printable ascii characters, got %d characters",
			tperrors.ErrIncorrectInput, len(d.Password)))
	}
	return errors.Join(errs...)
}

// ValidateIP accepts dotted quad IPv4 addresses and localhost. The unspecified,
// multicast and limited broadcast addresses are rejected.
func ValidateIP(ip string) error {
	if !ipv4Re.MatchString(ip) {
		return fmt.Errorf("%w: invalid ip address format: %s", tperrors.ErrIncorrectInput, ip)
	}
	if ip == "localhost" {
		return nil
	}
	first, _ := strconv.Atoi(strings.SplitN(ip, ".", 2)[0])
	if ip == "0.0.0.0" || ip == "255.255.255.255" || (first >= 224 && first <= 239) {
		return fmt.Errorf("%w: ip address %s is not allowed: 0.0.0.0, 224.0.0.0 to 239.255.255.255 and 255.255.255.255 are reserved",
			tperrors.ErrIncorrectInput, ip)
	}
	return nil
}

// ParsePort parses a port number in the range 0..65535.
func ParsePort(port string) (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(port))
	if err != nil {
		return 0, fmt.Errorf("%w: port %q is not a number", tperrors.ErrIncorrectInput, port)
	}
	if p < 0 || p > 65535 {
		return 0, fmt.Errorf("%w: port %d out of range, must be between 0 and 65535", tperrors.ErrIncorrectInput, p)
	}
	return p, nil
}

// ValidDeviceType reports whether t is router or switch.
func ValidDeviceType(t string) bool {
	return t == DeviceTypeRouter || t == DeviceTypeSwitch
}

// ValidIOS reports whether ios names a telnet or ssh platform.
func ValidIOS(ios string) bool {
	return len(ios) > len(TelnetSuffix) && strings.HasSuffix(ios, TelnetSuffix) ||
		len(ios) > len(SSHSuffix) && strings.HasSuffix(ios, SSHSuffix)
}

// Targets returns the devices sorted by ip, then port.
// Entries with an unparsable port are left out.
func (s *Settings) Targets() []Target {
	var out []Target
	for ip, ports := range s.Devices {
		for port, d := range ports {
			p, err := ParsePort(port)
			if err != nil || d == nil {
				continue
			}
			out = append(out, Target{IP: ip, Port: p, Device: d})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IP != out[j].IP {
			return out[i].IP < out[j].IP
		}
		return out[i].Port < out[j].Port
	})
	return out
}

// Sections returns the section names of device type t in sorted order.
func (s *Settings) Sections(t string) []string {
	names := maps.Keys(s.Commands[t])
	slices.Sort(names)
	return names
}
