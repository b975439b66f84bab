/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package panelmock

import "github.com/stretchr/testify/mock"

type PanelMock struct {
	mock.Mock
}

func (pm *PanelMock) SetMountOk(on bool) {
	pm.Called(on)
}

func (pm *PanelMock) SetActive(on bool) {
	pm.Called(on)
}

func (pm *PanelMock) SetSuccess(on bool) {
	pm.Called(on)
}

func (pm *PanelMock) SetError(on bool) {
	pm.Called(on)
}
