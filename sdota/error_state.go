/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrorState is the State interface implementation for the SDOtaStateError
type ErrorState struct {
	BaseState
	cause   SDOtaErrorReporter
	outcome Outcome
}

// Handle for ErrorState triggers the recovery if the error is fatal or
// finishes the boot attempt otherwise
func (state *ErrorState) Handle(so *SDOta) State {
	log.Warn(state.cause)

	so.Outcome = state.outcome

	if state.cause.IsFatal() {
		return NewRecoveryState(state.cause.Error())
	}

	return NewIdleState(state.outcome)
}

// ToMap is for the State interface implementation
func (state *ErrorState) ToMap() map[string]interface{} {
	m := state.BaseState.ToMap()
	m["error"] = state.cause.Error()
	m["outcome"] = state.outcome.String()
	return m
}

// NewErrorState creates a new ErrorState from a SDOtaErrorReporter
func NewErrorState(outcome Outcome, err SDOtaErrorReporter) State {
	if err == nil {
		err = NewFatalError(errors.New("generic error"))
	}

	return &ErrorState{
		BaseState: BaseState{id: SDOtaStateError},
		cause:     err,
		outcome:   outcome,
	}
}
