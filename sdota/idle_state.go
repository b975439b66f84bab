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
)

// IdleState is the State interface implementation for the SDOtaStateIdle
type IdleState struct {
	BaseState
	outcome Outcome
}

// Handle for IdleState records the outcome and returns control
func (state *IdleState) Handle(so *SDOta) State {
	so.Outcome = state.outcome

	if state.outcome.RaisesError() {
		log.Warn("update check finished: ", state.outcome)
	} else {
		log.Info("update check finished: ", state.outcome)
	}

	return NewExitState(0)
}

// ToMap is for the State interface implementation
func (state *IdleState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["outcome"] = state.outcome.String()
	return m
}

// NewIdleState creates a new IdleState
func NewIdleState(outcome Outcome) *IdleState {
	return &IdleState{
		BaseState: BaseState{id: SDOtaStateIdle},
		outcome:   outcome,
	}
}
