/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package utils

import (
	log "github.com/sirupsen/logrus"
)

// DefaultRebootCommand restarts the whole device
const DefaultRebootCommand = "/sbin/reboot"

// Rebooter requests a full device restart
type Rebooter interface {
	Reboot() error
}

// RebooterImpl restarts the device by running Command
type RebooterImpl struct {
	CmdLineExecuter
	Command string
}

// NewRebooter returns a Rebooter running the default reboot command
func NewRebooter() *RebooterImpl {
	return &RebooterImpl{
		CmdLineExecuter: &CmdLine{},
		Command:         DefaultRebootCommand,
	}
}

// Reboot runs the configured reboot command
func (r *RebooterImpl) Reboot() error {
	cmd := r.Command
	if cmd == "" {
		cmd = DefaultRebootCommand
	}

	log.Warn("requesting device restart")

	_, err := r.Execute(cmd)

	return err
}
