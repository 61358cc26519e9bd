// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package cmd

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/toporecover/toporecover/constants"
	tperrors "github.com/toporecover/toporecover/errors"
	"github.com/toporecover/toporecover/transport"
	"github.com/toporecover/toporecover/types"
	"github.com/toporecover/toporecover/utils"
)

var (
	uploadConfig   string
	uploadIP       string
	uploadPort     string
	uploadType     string
	uploadIOS      string
	uploadUsername string
	uploadPassword string
)

// uploadCmd represents the upload command.
var uploadCmd = &cobra.Command{
	Use:     "upload",
	Short:   "replay a normalized configuration file onto a device",
	Aliases: []string{"write"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := uploadTarget()
		if err != nil {
			return err
		}
		p, err := utils.ExpandPath(uploadConfig)
		if err != nil {
			return err
		}

		if t.Device.Username != "" && !cmd.Flags().Changed("password") {
			t.Device.Password, err = utils.ReadPasswordFromTerminal(fmt.Sprintf("password for %s@%s: ", t.Device.Username, t))
			if err != nil {
				return err
			}
			if err := t.Device.Validate(); err != nil {
				return err
			}
		}

		u := &transport.Uploader{Dial: transport.DialScrapli}
		res, err := u.Upload(cmd.Context(), p, t)
		if err != nil {
			return err
		}
		log.Infof("%d lines sent to %s, %d rejected", res.Lines, t, res.Failed)
		if res.Failed > 0 {
			return fmt.Errorf("%w: %d of %d lines rejected by %s", tperrors.ErrCommandFailed, res.Failed, res.Lines, t)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVarP(&uploadConfig, "config", "c", "", "normalized configuration file to upload")
	uploadCmd.Flags().StringVarP(&uploadIP, "ip", "", "", "device address")
	uploadCmd.Flags().StringVarP(&uploadPort, "port", "p", constants.DefaultUploadPort, "device port")
	uploadCmd.Flags().StringVarP(&uploadType, "device-type", "", types.DeviceTypeRouter, "device type, router or switch")
	uploadCmd.Flags().StringVarP(&uploadIOS, "device-ios", "", constants.DefaultUploadIOS, "platform and transport, e.g. cisco_ios_ssh")
	uploadCmd.Flags().StringVarP(&uploadUsername, "username", "u", "", "login username, empty for devices without login")
	uploadCmd.Flags().StringVarP(&uploadPassword, "password", "", "", "login password, asked for on the terminal when not set")
	_ = uploadCmd.MarkFlagRequired("config")
	_ = uploadCmd.MarkFlagRequired("ip")
	_ = uploadCmd.MarkFlagFilename("config")
}

// uploadTarget builds and validates the device to upload to from the flags.
func uploadTarget() (types.Target, error) {
	var errs []error
	if err := types.ValidateIP(uploadIP); err != nil {
		errs = append(errs, fmt.Errorf("ip: %w", err))
	}
	port, err := types.ParsePort(uploadPort)
	if err != nil {
		errs = append(errs, err)
	}
	d := &types.Device{
		Type:     uploadType,
		IOS:      uploadIOS,
		Username: uploadUsername,
		Password: uploadPassword,
	}
	if err := d.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return types.Target{}, err
	}
	return types.Target{IP: uploadIP, Port: port, Device: d}, nil
}
