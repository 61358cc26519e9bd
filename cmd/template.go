// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/types"
	"github.com/toporecover/toporecover/utils"
)

var templateForce bool

// templateCmd represents the generate-template command.
var templateCmd = &cobra.Command{
	Use:     "generate-template <file>",
	Short:   "write an example device settings file",
	Aliases: []string{"gen"},
	Args:    cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := utils.ExpandPath(args[0])
		if err != nil {
			return err
		}
		if utils.FileExists(p) && !templateForce {
			return fmt.Errorf("%w: %s already exists, use --force to overwrite it", tperrors.ErrIncorrectInput, p)
		}
		if err := types.WriteTemplate(p); err != nil {
			return err
		}
		log.Infof("settings template written to %s", p)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(templateCmd)
	templateCmd.Flags().BoolVarP(&templateForce, "force", "f", false, "overwrite an existing file")
}
