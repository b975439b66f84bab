/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import "github.com/pkg/errors"

var (
	ErrMissingPayload   = errors.New("firmware payload not found")
	ErrEmptyPayload     = errors.New("firmware payload is empty")
	ErrNoSpace          = errors.New("not enough space in update slot")
	ErrIncompleteWrite  = errors.New("firmware payload written partially")
	ErrCommit           = errors.New("update slot finalize failed")
	ErrMountUnavailable = errors.New("storage unavailable")
)

type SDOtaErrorReporter interface {
	Cause() error
	IsFatal() bool
	error
}

type SDOtaError struct {
	cause error
	fatal bool
}

func (e *SDOtaError) Cause() error {
	return e.cause
}

func (e *SDOtaError) IsFatal() bool {
	return e.fatal
}

func (e *SDOtaError) Error() string {
	var err error

	if e.fatal {
		err = errors.Wrapf(e.cause, "fatal error")
	} else {
		err = errors.Wrapf(e.cause, "transient error")
	}

	return err.Error()
}

// NewFatalError creates an error that makes the device restart
func NewFatalError(err error) SDOtaErrorReporter {
	return &SDOtaError{
		cause: err,
		fatal: true,
	}
}

// NewTransientError creates an error that ends the boot attempt without
// restarting
func NewTransientError(err error) SDOtaErrorReporter {
	return &SDOtaError{
		cause: err,
		fatal: false,
	}
}
