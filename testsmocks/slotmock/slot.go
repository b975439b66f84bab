/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package slotmock

import (
	"io"

	"github.com/stretchr/testify/mock"
)

type SlotMock struct {
	mock.Mock
}

func (sm *SlotMock) Begin(size int64) bool {
	args := sm.Called(size)
	return args.Bool(0)
}

func (sm *SlotMock) WriteStream(r io.Reader) int64 {
	args := sm.Called(r)
	return args.Get(0).(int64)
}

func (sm *SlotMock) End() bool {
	args := sm.Called()
	return args.Bool(0)
}

func (sm *SlotMock) ErrorCode() int {
	args := sm.Called()
	return args.Int(0)
}

func (sm *SlotMock) IsFinished() bool {
	args := sm.Called()
	return args.Bool(0)
}
