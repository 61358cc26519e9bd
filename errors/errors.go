// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package errors

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when a file is not found.
var ErrFileNotFound = errors.New("file not found")

// ErrIncorrectInput is returned when the user input is incorrect.
var ErrIncorrectInput = errors.New("incorrect input")

// ErrStructural is matched by every StructuralError.
var ErrStructural = errors.New("capture is missing a required section marker")

// ErrIO is matched by every IOError.
var ErrIO = errors.New("i/o failure")

// ErrCommandFailed is returned when a device rejects a command.
var ErrCommandFailed = errors.New("command failed")

// StructuralError reports a section marker that could not be found in a raw capture.
type StructuralError struct {
	Section string
	Marker  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("section %q: marker %q not found", e.Section, e.Marker)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// IOError wraps a failed file operation with the path and the operation that failed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
