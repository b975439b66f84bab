/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunningVersion(t *testing.T) {
	v, err := NewRunningVersion("5")
	assert.NoError(t, err)
	assert.Equal(t, RunningVersion(5), v)

	v, err = NewRunningVersion(" 12\n")
	assert.NoError(t, err)
	assert.Equal(t, RunningVersion(12), v)
}

func TestNewRunningVersionWithInvalidValues(t *testing.T) {
	for _, s := range []string{"", "0", "-3", "abc", "1.2"} {
		v, err := NewRunningVersion(s)
		assert.Error(t, err, s)
		assert.Equal(t, RunningVersion(0), v, s)
	}
}

func TestNewRunningVersionErrorMessages(t *testing.T) {
	_, err := NewRunningVersion("0")
	assert.EqualError(t, err, "invalid running version '0': must be greater than zero")

	_, err = NewRunningVersion("abc")
	assert.EqualError(t, err, "invalid running version 'abc': strconv.Atoi: parsing \"abc\": invalid syntax")
}

func TestDecide(t *testing.T) {
	testCases := []struct {
		name      string
		candidate CandidateVersion
		running   RunningVersion
		expected  Decision
	}{
		{"Newer", 2, 1, Proceed},
		{"MuchNewer", 100, 7, Proceed},
		{"Equal", 5, 5, Skip},
		{"Older", 3, 5, Skip},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decide(tc.candidate, tc.running))
		})
	}
}

func TestDecideIsStrictlyGreater(t *testing.T) {
	for r := 1; r < 20; r++ {
		for c := 1; c < 20; c++ {
			expected := Skip
			if c > r {
				expected = Proceed
			}

			assert.Equal(t, expected, Decide(CandidateVersion(c), RunningVersion(r)))
		}
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "proceed", Proceed.String())
	assert.Equal(t, "skip", Skip.String())
}
