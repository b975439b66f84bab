/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"sync"

	"github.com/Trion/SD-OTA-Uploader/indicator"
)

// IndicatorsForOutcome returns the lasting indicator state for o. Active is
// always off, Success is only on for Applied.
func IndicatorsForOutcome(o Outcome, mountOk bool) indicator.State {
	return indicator.State{
		MountOk: mountOk,
		Active:  false,
		Success: o == OutcomeApplied,
		Error:   o.RaisesError(),
	}
}

// StatusReporter mirrors the state machine transitions on the indicator
// panel. Only channels whose value changes are written.
type StatusReporter struct {
	Panel indicator.Panel

	current indicator.State
	mutex   sync.Mutex
}

// NewStatusReporter creates a StatusReporter driving panel
func NewStatusReporter(panel indicator.Panel) *StatusReporter {
	return &StatusReporter{Panel: panel}
}

// State returns the last value written to every channel
func (sr *StatusReporter) State() indicator.State {
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	return sr.current
}

// Reset turns every channel off, whatever it was before
func (sr *StatusReporter) Reset() {
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	sr.Panel.SetMountOk(false)
	sr.Panel.SetActive(false)
	sr.Panel.SetSuccess(false)
	sr.Panel.SetError(false)

	sr.current = indicator.State{}
}

// SignalError turns the Error channel on, writing it even if it is
// already on
func (sr *StatusReporter) SignalError() {
	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	sr.Panel.SetError(true)
	sr.current.Error = true
}

// Enter updates the panel for the state about to be handled
func (sr *StatusReporter) Enter(state State) {
	if _, ok := state.(*MountState); ok {
		sr.Reset()
		return
	}

	sr.mutex.Lock()
	defer sr.mutex.Unlock()

	next := sr.current

	switch s := state.(type) {
	case *ProbeState:
		next.MountOk = true
	case *InstallingState:
		next.Active = true
	case *ErrorState:
		next.Active = false
		next.Error = true
	case *RecoveryState:
		next.Active = false
		next.Error = true
	case *IdleState:
		next = IndicatorsForOutcome(s.outcome, sr.current.MountOk)
	}

	sr.apply(next)
}

func (sr *StatusReporter) apply(next indicator.State) {
	if next.MountOk != sr.current.MountOk {
		sr.Panel.SetMountOk(next.MountOk)
	}

	if next.Active != sr.current.Active {
		sr.Panel.SetActive(next.Active)
	}

	if next.Success != sr.current.Success {
		sr.Panel.SetSuccess(next.Success)
	}

	if next.Error != sr.current.Error {
		sr.Panel.SetError(next.Error)
	}

	sr.current = next
}
