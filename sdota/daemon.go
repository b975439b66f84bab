/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

type Daemon struct {
	so   *SDOta
	stop bool
}

func NewDaemon(so *SDOta) *Daemon {
	return &Daemon{
		so: so,
	}
}

func (d *Daemon) Stop() {
	d.stop = true
}

// Run processes states until the exit state is reached and returns its
// exit code
func (d *Daemon) Run() int {
	for {
		nextState := d.so.ProcessCurrentState()

		if d.stop || nextState.ID() == SDOtaStateExit {
			if finalState, _ := nextState.(*ExitState); finalState != nil {
				return finalState.exitCode
			}

			return 0
		}
	}
}
