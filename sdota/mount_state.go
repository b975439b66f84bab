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

	"github.com/Trion/SD-OTA-Uploader/storage"
)

// MountState is the State interface implementation for the SDOtaStateMount
type MountState struct {
	BaseState
}

// Handle for MountState mounts the medium. Any failure is fatal for this
// boot.
func (state *MountState) Handle(so *SDOta) State {
	chipSelect := so.Settings.ChipSelect

	log.Info(fmt.Sprintf("mounting storage (chip-select: %d)", chipSelect))

	medium, err := so.StorageDriver.Mount(chipSelect)
	if err == nil && medium == nil {
		err = storage.ErrNoMedia
	}

	if err != nil {
		log.Error("storage mount failed: ", err)
		return NewErrorState(OutcomeFailedMountUnavailable, NewFatalError(errors.Wrap(err, ErrMountUnavailable.Error())))
	}

	so.Medium = medium

	log.Info("storage mounted")

	return NewProbeState()
}

// NewMountState creates a new MountState
func NewMountState() *MountState {
	return &MountState{
		BaseState: BaseState{id: SDOtaStateMount},
	}
}
