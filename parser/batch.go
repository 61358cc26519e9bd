// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package parser

import (
	"context"
)

// BatchResult pairs a job with its outcome.
type BatchResult struct {
	Options Options
	Result  *Result
	Err     error
}

// ParseBatch parses every job in order. A failing capture does not stop the
// batch; a cancelled context does, and the jobs not started report ctx.Err().
func ParseBatch(ctx context.Context, jobs []Options) []BatchResult {
	out := make([]BatchResult, 0, len(jobs))
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			out = append(out, BatchResult{Options: j, Err: err})
			continue
		}
		res, err := Parse(ctx, j)
		out = append(out, BatchResult{Options: j, Result: res, Err: err})
	}
	return out
}
