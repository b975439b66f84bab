/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"github.com/Trion/SD-OTA-Uploader/metadata"
)

// Outcome is the single result of a boot attempt
type Outcome int

const (
	// OutcomeNone means the boot attempt has not finished yet
	OutcomeNone Outcome = iota
	OutcomeApplied
	OutcomeSkippedUpToDate
	OutcomeSkippedNoCandidate
	OutcomeSkippedInvalidVersion
	OutcomeFailedIncompleteWrite
	OutcomeFailedCommit
	OutcomeFailedNoSpace
	OutcomeFailedMissingPayload
	OutcomeFailedEmptyPayload
	OutcomeFailedMountUnavailable
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:                   "none",
	OutcomeApplied:                "applied",
	OutcomeSkippedUpToDate:        "skipped-up-to-date",
	OutcomeSkippedNoCandidate:     "skipped-no-candidate",
	OutcomeSkippedInvalidVersion:  "skipped-invalid-version",
	OutcomeFailedIncompleteWrite:  "failed-incomplete-write",
	OutcomeFailedCommit:           "failed-commit",
	OutcomeFailedNoSpace:          "failed-no-space",
	OutcomeFailedMissingPayload:   "failed-missing-payload",
	OutcomeFailedEmptyPayload:     "failed-empty-payload",
	OutcomeFailedMountUnavailable: "failed-mount-unavailable",
}

var outcomeErrors = map[Outcome]error{
	OutcomeSkippedInvalidVersion:  metadata.ErrInvalidVersion,
	OutcomeFailedIncompleteWrite:  ErrIncompleteWrite,
	OutcomeFailedCommit:           ErrCommit,
	OutcomeFailedNoSpace:          ErrNoSpace,
	OutcomeFailedMissingPayload:   ErrMissingPayload,
	OutcomeFailedEmptyPayload:     ErrEmptyPayload,
	OutcomeFailedMountUnavailable: ErrMountUnavailable,
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}

	return "unknown"
}

// IsFailure reports whether o is one of the Failed outcomes
func (o Outcome) IsFailure() bool {
	return o >= OutcomeFailedIncompleteWrite && o <= OutcomeFailedMountUnavailable
}

// RaisesError reports whether o must leave the Error indicator on
func (o Outcome) RaisesError() bool {
	return o.IsFailure() || o == OutcomeSkippedInvalidVersion
}

// Err returns the sentinel error for o, nil for the successful and the
// benign skip outcomes
func (o Outcome) Err() error {
	return outcomeErrors[o]
}
