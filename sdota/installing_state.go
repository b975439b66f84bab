/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/Trion/SD-OTA-Uploader/metadata"
)

// InstallingState is the State interface implementation for the SDOtaStateInstalling
type InstallingState struct {
	BaseState
	candidate metadata.CandidateVersion
}

// Handle for InstallingState writes the payload into the update slot
func (state *InstallingState) Handle(so *SDOta) State {
	log.Info(fmt.Sprintf("installing version %d", state.candidate))

	outcome := so.ApplyUpdate()
	if outcome != OutcomeApplied {
		return NewErrorState(outcome, NewTransientError(outcome.Err()))
	}

	return NewInstalledState(state.candidate)
}

// ToMap is for the State interface implementation
func (state *InstallingState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["candidate-version"] = int(state.candidate)
	return m
}

// NewInstallingState creates a new InstallingState
func NewInstallingState(candidate metadata.CandidateVersion) *InstallingState {
	return &InstallingState{
		BaseState: BaseState{id: SDOtaStateInstalling},
		candidate: candidate,
	}
}
