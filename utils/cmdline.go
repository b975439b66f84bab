/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package utils

import (
	"fmt"
	"os/exec"

	shellwords "github.com/mattn/go-shellwords"
	log "github.com/sirupsen/logrus"
)

// CmdLineExecuter runs a command line and returns its combined output
type CmdLineExecuter interface {
	Execute(cmdline string) ([]byte, error)
}

// CmdLine is the default CmdLineExecuter
type CmdLine struct {
}

// Execute splits cmdline with shell quoting rules and runs it
func (cl *CmdLine) Execute(cmdline string) ([]byte, error) {
	p := shellwords.NewParser()
	list, err := p.Parse(cmdline)
	if err != nil {
		return nil, err
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("empty command line")
	}

	log.Debug("executing: ", cmdline)

	cmd := exec.Command(list[0], list[1:]...)
	ret, err := cmd.CombinedOutput()

	if exitErr, ok := err.(*exec.ExitError); ok {
		if !exitErr.Success() {
			return ret, fmt.Errorf("Error executing command '%s': %s", cmdline, string(ret))
		}
	}

	return ret, err
}
