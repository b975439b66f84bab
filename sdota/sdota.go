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
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Trion/SD-OTA-Uploader/indicator"
	"github.com/Trion/SD-OTA-Uploader/metadata"
	"github.com/Trion/SD-OTA-Uploader/otaslot"
	"github.com/Trion/SD-OTA-Uploader/storage"
	"github.com/Trion/SD-OTA-Uploader/utils"
)

// SDOta drives one boot-time update attempt from the removable medium
type SDOta struct {
	RunningVersion metadata.RunningVersion
	Settings       *Settings
	StorageDriver  storage.Driver
	Slot           otaslot.Interface
	Status         *StatusReporter
	utils.Rebooter
	Sleep func(time.Duration)

	// Medium is set once the storage is mounted
	Medium           afero.Fs
	Outcome          Outcome
	CleanupError     error
	RestartRequested bool

	state      State
	stateMutex sync.Mutex
}

// NewSDOta creates an updater starting at the mount state
func NewSDOta(
	runningVersion metadata.RunningVersion,
	settings *Settings,
	driver storage.Driver,
	slot otaslot.Interface,
	panel indicator.Panel,
	rebooter utils.Rebooter) *SDOta {

	return &SDOta{
		RunningVersion: runningVersion,
		Settings:       settings,
		StorageDriver:  driver,
		Slot:           slot,
		Status:         NewStatusReporter(panel),
		Rebooter:       rebooter,
		Sleep:          time.Sleep,
		Outcome:        OutcomeNone,
		state:          NewMountState(),
	}
}

func (so *SDOta) GetState() State {
	so.stateMutex.Lock()
	defer so.stateMutex.Unlock()

	return so.state
}

func (so *SDOta) SetState(state State) {
	so.stateMutex.Lock()
	defer so.stateMutex.Unlock()

	so.state = state
}

// ProcessCurrentState reports the current state on the indicators,
// handles it and moves to the state it returns
func (so *SDOta) ProcessCurrentState() State {
	state := so.GetState()

	log.Debug("handling state: ", StateToString(state.ID()))

	so.Status.Enter(state)

	next := state.Handle(so)
	so.SetState(next)

	return next
}

// StatusMap describes the current state, the outcome and the indicators
func (so *SDOta) StatusMap() map[string]interface{} {
	m := so.GetState().ToMap()

	m["outcome"] = so.Outcome.String()
	m["running-version"] = int(so.RunningVersion)
	m["indicators"] = so.Status.State()

	if so.CleanupError != nil {
		m["cleanup-error"] = so.CleanupError.Error()
	}

	return m
}

// ProbeUpdate reads the candidate version from the version descriptor
func (so *SDOta) ProbeUpdate() (metadata.CandidateVersion, error) {
	return metadata.ReadCandidate(so.Medium, so.Settings.DescriptorPath)
}

// ApplyUpdate writes the payload into the update slot and classifies the
// result. Files on the medium are not touched.
func (so *SDOta) ApplyUpdate() Outcome {
	payloadPath := so.Settings.PayloadPath

	payload, err := so.Medium.Open(payloadPath)
	if err != nil {
		log.Error(fmt.Sprintf("firmware payload '%s' not found: %s", payloadPath, err))
		return OutcomeFailedMissingPayload
	}
	defer payload.Close()

	info, err := payload.Stat()
	if err != nil {
		log.Error(fmt.Sprintf("failed to stat firmware payload '%s': %s", payloadPath, err))
		return OutcomeFailedMissingPayload
	}

	if info.IsDir() {
		log.Error(fmt.Sprintf("firmware payload '%s' is a directory", payloadPath))
		return OutcomeFailedMissingPayload
	}

	size := info.Size()
	if size <= 0 {
		log.Error(fmt.Sprintf("firmware payload '%s' is empty", payloadPath))
		return OutcomeFailedEmptyPayload
	}

	log.Info(fmt.Sprintf("writing %d bytes to update slot", size))

	if !so.Slot.Begin(size) {
		code := so.Slot.ErrorCode()
		log.Error(fmt.Sprintf("not enough space to begin update (error code: %d, %s)", code, otaslot.ErrorString(code)))
		return OutcomeFailedNoSpace
	}

	written := so.Slot.WriteStream(payload)
	complete := written == size

	if complete {
		log.Info(fmt.Sprintf("written %d bytes successfully", written))
	} else {
		log.Error(fmt.Sprintf("written only %d of %d bytes", written, size))
		so.Status.SignalError()
	}

	if !so.Slot.End() {
		code := so.Slot.ErrorCode()
		log.Error(fmt.Sprintf("update finalize failed (error code: %d, %s)", code, otaslot.ErrorString(code)))

		if !complete {
			return OutcomeFailedIncompleteWrite
		}

		return OutcomeFailedCommit
	}

	if !so.Slot.IsFinished() {
		log.Error("update finalized but the image is not marked as finished")

		if !complete {
			return OutcomeFailedIncompleteWrite
		}

		return OutcomeFailedCommit
	}

	if !complete {
		log.Error("update slot committed over an incomplete write")
		return OutcomeFailedIncompleteWrite
	}

	log.Info("update successfully completed")

	return OutcomeApplied
}

// Cleanup removes the payload and the descriptor so the update is not
// applied again. Failures are returned merged and never escalated.
func (so *SDOta) Cleanup() error {
	errorList := []error{}

	for _, p := range []string{so.Settings.PayloadPath, so.Settings.DescriptorPath} {
		err := so.Medium.Remove(p)
		if err != nil {
			log.Warn(fmt.Sprintf("failed to remove '%s': %s", p, err))
			errorList = append(errorList, errors.Wrapf(err, "failed to remove '%s'", p))
			continue
		}

		log.Info("removed ", p)
	}

	return utils.MergeErrorList(errorList)
}
