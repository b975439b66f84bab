/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFatalError(t *testing.T) {
	cause := fmt.Errorf("cause error")
	err := NewFatalError(cause)

	assert.True(t, err.IsFatal())
	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, "fatal error: cause error", err.Error())
}

func TestNewTransientError(t *testing.T) {
	cause := fmt.Errorf("cause error")
	err := NewTransientError(cause)

	assert.False(t, err.IsFatal())
	assert.Equal(t, cause, err.Cause())
	assert.Equal(t, "transient error: cause error", err.Error())
}
