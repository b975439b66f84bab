/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

// ExitState is the final state of the state machine
type ExitState struct {
	BaseState

	exitCode int
}

// NewExitState creates a new ExitState
func NewExitState(exitCode int) *ExitState {
	return &ExitState{
		BaseState: BaseState{id: SDOtaStateExit},
		exitCode:  exitCode,
	}
}

// ExitCode returns the code the process should exit with
func (state *ExitState) ExitCode() int {
	return state.exitCode
}

// Handle for ExitState
func (state *ExitState) Handle(so *SDOta) State {
	panic("ExitState handler should not be called")
}
