// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package utils

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"golang.org/x/exp/slices"
)

// FileExists returns true if a regular file exists by the path filename.
func FileExists(filename string) bool {
	f, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !f.IsDir()
}

// DirExists returns true if a directory exists by the path.
func DirExists(path string) bool {
	f, err := os.Stat(path)
	return err == nil && f.IsDir()
}

// CreateDirectory creates a directory by a path with a mode/permission specified by perm.
// If directory exists, the function does not do anything.
func CreateDirectory(path string, perm os.FileMode) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, perm)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user home directory and cleans the result.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	e, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	return filepath.Clean(e), nil
}

// FilesInDir returns the sorted paths of the regular files in dir
// whose base name satisfies match.
func FilesInDir(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if match == nil || match(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}
