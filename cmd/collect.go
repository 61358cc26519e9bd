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
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/toporecover/toporecover/transport"
	"github.com/toporecover/toporecover/utils"
)

// collectCmd represents the collect command.
var collectCmd = &cobra.Command{
	Use:     "collect",
	Short:   "read the configuration of every device in the settings file",
	Long:    "connect to each device of the settings file, run its device type commands and save one raw capture per device",
	Aliases: []string{"read"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := collect(cmd.Context(), os.Stdout)
		return err
	},
}

func init() {
	RootCmd.AddCommand(collectCmd)
}

// collect runs the collector and prints a summary. It fails only when no
// device could be collected.
func collect(ctx context.Context, w io.Writer) ([]transport.DeviceResult, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, err
	}
	dest, err := utils.ExpandPath(rawDir)
	if err != nil {
		return nil, err
	}

	c := &transport.Collector{
		Settings: s,
		Dest:     dest,
		Dial:     transport.DialScrapli,
	}
	res, err := c.Collect(ctx)
	if err != nil {
		return nil, err
	}
	printCollectSummary(w, res)

	ok := 0
	for _, r := range res {
		if r.Err == nil {
			ok++
		}
	}
	log.Infof("%d of %d devices collected", ok, len(res))
	if ok == 0 && len(res) > 0 {
		return res, errors.New("no device collected")
	}
	return res, nil
}

func collectRows(res []transport.DeviceResult) [][]string {
	rows := make([][]string, 0, len(res))
	for i, r := range res {
		status, file := "ok", r.Path
		if r.Err != nil {
			status, file = "failed", r.Err.Error()
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Target.IP,
			strconv.Itoa(r.Target.Port),
			r.Target.Device.Type,
			status,
			fmt.Sprint(r.Sections),
			file,
		})
	}
	return rows
}

func printCollectSummary(w io.Writer, res []transport.DeviceResult) {
	if len(res) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "IP", "Port", "Type", "Status", "Sections", "File"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(collectRows(res))
	table.Render()
}
