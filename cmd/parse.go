// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/toporecover/toporecover/constants"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/parser"
	"github.com/toporecover/toporecover/types"
	"github.com/toporecover/toporecover/utils"
)

var keepRaw bool

// parseCmd represents the parse command.
var parseCmd = &cobra.Command{
	Use:   "parse [capture files...]",
	Short: "normalize raw captures into configuration files",
	Long: `parse turns raw captures into configuration files that can be uploaded again.
Without arguments every capture in the raw directory is parsed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return parse(cmd.Context(), os.Stdout, args)
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVarP(&keepRaw, "keep-raw", "k", false, "keep the raw captures after a successful parse")
}

func parse(ctx context.Context, w io.Writer, files []string) error {
	if len(files) == 0 {
		dir, err := utils.ExpandPath(rawDir)
		if err != nil {
			return err
		}
		files, err = utils.FilesInDir(dir, types.IsCaptureName)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			log.Warnf("no raw captures found in %s", dir)
			return nil
		}
	}

	m, err := loadMatchlist()
	if err != nil {
		return err
	}
	jobs, err := parseJobs(files, m, uuid.NewString())
	if err != nil {
		return err
	}

	res := parser.ParseBatch(ctx, jobs)
	printParseSummary(w, res)

	var errs []error
	for _, r := range res {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Options.Input, r.Err))
			continue
		}
		if keepRaw {
			continue
		}
		if err := os.Remove(r.Options.Input); err != nil {
			log.Warnf("failed to remove raw capture %s: %v", r.Options.Input, err)
		}
	}
	return errors.Join(errs...)
}

// parseJobs builds one parse job per capture file. The device address is
// taken from the file name when it follows the capture naming scheme.
func parseJobs(files []string, m *parser.Matchlist, runID string) ([]parser.Options, error) {
	jobs := make([]parser.Options, 0, len(files))
	for _, f := range files {
		p, err := utils.ExpandPath(f)
		if err != nil {
			return nil, err
		}
		if parser.OutputPath(p) == p {
			return nil, fmt.Errorf("%w: %s has no raw_ token in its name, the output would overwrite it",
				tperrors.ErrIncorrectInput, p)
		}
		o := parser.Options{
			Input:     p,
			Matchlist: m,
			RunID:     runID,
		}
		if ip, port, err := types.ParseCaptureName(filepath.Base(p)); err == nil {
			o.IP, o.Port = ip, port
		}
		jobs = append(jobs, o)
	}
	return jobs, nil
}

func parseRows(res []parser.BatchResult) [][]string {
	rows := make([][]string, 0, len(res))
	for _, r := range res {
		row := []string{filepath.Base(r.Options.Input), r.Options.IP, r.Options.Port}
		if r.Result == nil {
			na := constants.NotApplicable
			row = append(row, na, na, na, na, na, r.Err.Error())
			rows = append(rows, row)
			continue
		}
		output := filepath.Base(r.Result.Output)
		if r.Err != nil {
			output = r.Err.Error()
		}
		row = append(row,
			string(r.Result.Running),
			fmt.Sprintf("%s (%d)", r.Result.VLAN, r.Result.VLANs),
			string(r.Result.VTP),
			fmt.Sprint(r.Result.Reconcile.NoShutdowns),
			humanize.Bytes(uint64(r.Result.Bytes)),
			output,
		)
		rows = append(rows, row)
	}
	return rows
}

func printParseSummary(w io.Writer, res []parser.BatchResult) {
	if len(res) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Capture", "IP", "Port", "Running", "VLAN", "VTP", "No shutdown", "Size", "Output"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(parseRows(res))
	table.Render()
}
