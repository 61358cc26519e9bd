// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"fmt"
	"regexp"
)

// GetRegexpCaptureGroups returns the named capture groups of the first match of r in search.
func GetRegexpCaptureGroups(r *regexp.Regexp, search string) (map[string]string, error) {
	matches := r.FindStringSubmatch(search)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%q does not match regexp %q, no match", search, r)
	}

	captureGroups := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if i != 0 && name != "" {
			captureGroups[name] = matches[i]
		}
	}

	return captureGroups, nil
}
