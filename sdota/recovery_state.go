/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	log "github.com/sirupsen/logrus"

	"github.com/Trion/SD-OTA-Uploader/indicator"
)

// RecoveryState is the State interface implementation for the
// SDOtaStateRecovery. It signals the failure and restarts the device.
type RecoveryState struct {
	BaseState
	reason string
}

// Handle for RecoveryState blinks the Error indicator and requests a
// restart. It never goes back to the update flow.
func (state *RecoveryState) Handle(so *SDOta) State {
	log.Error("boot recovery: ", state.reason)

	indicator.Blink(so.Status.Panel.SetError, so.Settings.BlinkCount, so.Settings.BlinkInterval, so.Sleep)
	so.Status.SignalError()

	so.RestartRequested = true

	err := so.Reboot()
	if err != nil {
		log.Error("restart request failed: ", err)
	}

	return NewExitState(1)
}

// ToMap is for the State interface implementation
func (state *RecoveryState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["reason"] = state.reason
	return m
}

// NewRecoveryState creates a new RecoveryState
func NewRecoveryState(reason string) *RecoveryState {
	return &RecoveryState{
		BaseState: BaseState{id: SDOtaStateRecovery},
		reason:    reason,
	}
}
