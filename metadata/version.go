/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package metadata

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RunningVersion is the version compiled into the running firmware
type RunningVersion int

// CandidateVersion is the version advertised by the descriptor file
type CandidateVersion int

// Decision is the result of comparing a candidate to the running version
type Decision int

const (
	// Skip means the candidate must not be installed
	Skip Decision = iota
	// Proceed means the candidate is newer than the running version
	Proceed
)

func (d Decision) String() string {
	if d == Proceed {
		return "proceed"
	}

	return "skip"
}

// NewRunningVersion parses the compiled-in version string. Zero, negative
// and non-numeric values are rejected.
func NewRunningVersion(s string) (RunningVersion, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid running version '%s'", s)
	}

	if v <= 0 {
		return 0, errors.Errorf("invalid running version '%s': must be greater than zero", s)
	}

	return RunningVersion(v), nil
}

// Decide returns Proceed only when the candidate is strictly newer
func Decide(candidate CandidateVersion, running RunningVersion) Decision {
	if int(candidate) > int(running) {
		return Proceed
	}

	return Skip
}
