// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"

	"github.com/toporecover/toporecover/cmd"
)

func main() {
	ctx, cancel := cmd.SignalHandledContext()

	err := cmd.RootCmd.ExecuteContext(ctx)

	// ensure cancel is *always* called (os.Exit bypasses)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
