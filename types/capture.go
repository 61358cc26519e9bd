// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package types

import (
	"fmt"
	"regexp"
	"time"

	"github.com/toporecover/toporecover/utils"
)

// CaptureSuffix ends the name of every raw capture file.
const CaptureSuffix = "raw_config.txt"

var captureNameRe = regexp.MustCompile(
	`^(?P<ip>(\d{1,3}\.){3}\d{1,3})_(?P<port>\d{1,5})-\d{4}(_\d{1,2}){2}-(\d{1,2}_){3}raw_config\.txt$`)

// CaptureName returns the raw capture file name of the device ip:port read at t.
// Date and time fields are not zero padded.
func CaptureName(ip string, port int, t time.Time) string {
	return fmt.Sprintf("%s_%d-%d_%d_%d-%d_%d_%d_%s",
		ip, port, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), CaptureSuffix)
}

// ParseCaptureName returns the ip and port encoded in a raw capture file name.
func ParseCaptureName(name string) (ip, port string, err error) {
	groups, err := utils.GetRegexpCaptureGroups(captureNameRe, name)
	if err != nil {
		return "", "", err
	}
	return groups["ip"], groups["port"], nil
}

// IsCaptureName reports whether name follows the raw capture naming scheme.
func IsCaptureName(name string) bool {
	return captureNameRe.MatchString(name)
}
