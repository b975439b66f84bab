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

// InstalledState is the State interface implementation for the SDOtaStateInstalled
type InstalledState struct {
	BaseState
	candidate metadata.CandidateVersion
}

// Handle for InstalledState removes the update files from the medium
func (state *InstalledState) Handle(so *SDOta) State {
	so.CleanupError = so.Cleanup()
	if so.CleanupError != nil {
		log.Warn("update files left on storage: ", so.CleanupError)
	}

	log.Info(fmt.Sprintf("version %d installed, restart to boot it", state.candidate))

	return NewIdleState(OutcomeApplied)
}

// ToMap is for the State interface implementation
func (state *InstalledState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["candidate-version"] = int(state.candidate)
	return m
}

// NewInstalledState creates a new InstalledState
func NewInstalledState(candidate metadata.CandidateVersion) *InstalledState {
	return &InstalledState{
		BaseState: BaseState{id: SDOtaStateInstalled},
		candidate: candidate,
	}
}
