/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

// SDOtaState holds the possible states for the updater
type SDOtaState int

const (
	// SDOtaDummyState is a dummy state
	SDOtaDummyState SDOtaState = iota
	// SDOtaStateMount is set while the storage medium is being mounted
	SDOtaStateMount
	// SDOtaStateProbe is set while the version descriptor is read and
	// compared to the running version
	SDOtaStateProbe
	// SDOtaStateInstalling is set while the payload is written into the
	// update slot
	SDOtaStateInstalling
	// SDOtaStateInstalled is set when the update slot was committed and
	// the update files are being removed
	SDOtaStateInstalled
	// SDOtaStateIdle is set when the boot attempt has an outcome
	SDOtaStateIdle
	// SDOtaStateError is set when a failure was detected
	SDOtaStateError
	// SDOtaStateRecovery is set when the device must signal and restart
	SDOtaStateRecovery
	// SDOtaStateExit is set when the updater is about to return control
	SDOtaStateExit
)

var statusNames = map[SDOtaState]string{
	SDOtaDummyState:      "dummy",
	SDOtaStateMount:      "mount",
	SDOtaStateProbe:      "probe",
	SDOtaStateInstalling: "installing",
	SDOtaStateInstalled:  "installed",
	SDOtaStateIdle:       "idle",
	SDOtaStateError:      "error",
	SDOtaStateRecovery:   "recovery",
	SDOtaStateExit:       "exit",
}

// BaseState is the state from which all others must do composition
type BaseState struct {
	id SDOtaState
}

// ID returns the state id
func (b *BaseState) ID() SDOtaState {
	return b.id
}

// ToMap is for the State interface implementation
func (b *BaseState) ToMap() map[string]interface{} {
	m := map[string]interface{}{}
	m["status"] = StateToString(b.ID())
	return m
}

// State interface describes the necessary operations for a State
type State interface {
	ID() SDOtaState
	Handle(*SDOta) State // Handle implements the behavior when the State is set
	ToMap() map[string]interface{}
}

// StateToString converts a "SDOtaState" to string
func StateToString(status SDOtaState) string {
	return statusNames[status]
}
