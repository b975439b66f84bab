/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Trion/SD-OTA-Uploader/metadata"
)

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "skipped-no-candidate", OutcomeSkippedNoCandidate.String())
	assert.Equal(t, "failed-mount-unavailable", OutcomeFailedMountUnavailable.String())
	assert.Equal(t, "unknown", Outcome(99).String())
}

func TestOutcomeClassification(t *testing.T) {
	testCases := []struct {
		outcome     Outcome
		isFailure   bool
		raisesError bool
		err         error
	}{
		{OutcomeApplied, false, false, nil},
		{OutcomeSkippedUpToDate, false, false, nil},
		{OutcomeSkippedNoCandidate, false, false, nil},
		{OutcomeSkippedInvalidVersion, false, true, metadata.ErrInvalidVersion},
		{OutcomeFailedIncompleteWrite, true, true, ErrIncompleteWrite},
		{OutcomeFailedCommit, true, true, ErrCommit},
		{OutcomeFailedNoSpace, true, true, ErrNoSpace},
		{OutcomeFailedMissingPayload, true, true, ErrMissingPayload},
		{OutcomeFailedEmptyPayload, true, true, ErrEmptyPayload},
		{OutcomeFailedMountUnavailable, true, true, ErrMountUnavailable},
	}

	for _, tc := range testCases {
		t.Run(tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.isFailure, tc.outcome.IsFailure())
			assert.Equal(t, tc.raisesError, tc.outcome.RaisesError())
			assert.Equal(t, tc.err, tc.outcome.Err())
		})
	}
}
