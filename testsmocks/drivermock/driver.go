/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package drivermock

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
)

type DriverMock struct {
	mock.Mock
}

func (dm *DriverMock) Mount(chipSelect int) (afero.Fs, error) {
	args := dm.Called(chipSelect)

	fs, _ := args.Get(0).(afero.Fs)

	return fs, args.Error(1)
}
