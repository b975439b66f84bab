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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/Trion/SD-OTA-Uploader/metadata"
)

// ProbeState is the State interface implementation for the SDOtaStateProbe
type ProbeState struct {
	BaseState
}

// Handle for ProbeState reads the candidate version and decides whether
// it must be installed
func (state *ProbeState) Handle(so *SDOta) State {
	candidate, err := so.ProbeUpdate()

	if errors.Cause(err) == metadata.ErrNoCandidate {
		log.Info("no update found on storage")
		return NewIdleState(OutcomeSkippedNoCandidate)
	}

	if err != nil {
		log.Error(err)
		return NewIdleState(OutcomeSkippedInvalidVersion)
	}

	log.Info(fmt.Sprintf("candidate version %d, running version %d", candidate, so.RunningVersion))

	if metadata.Decide(candidate, so.RunningVersion) != metadata.Proceed {
		log.Info("firmware is up to date")
		return NewIdleState(OutcomeSkippedUpToDate)
	}

	return NewInstallingState(candidate)
}

// NewProbeState creates a new ProbeState
func NewProbeState() *ProbeState {
	return &ProbeState{
		BaseState: BaseState{id: SDOtaStateProbe},
	}
}
