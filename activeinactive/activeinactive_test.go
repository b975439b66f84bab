/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package activeinactive

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

const otadataPath = "/var/lib/sd-ota/otadata"

func TestDefaultImplActive(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, otadataPath, []byte("1\n"), 0644)

	di := DefaultImpl{FileSystemBackend: fs, Path: otadataPath}

	active, err := di.Active()

	assert.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestDefaultImplActiveWithoutOtadata(t *testing.T) {
	di := DefaultImpl{FileSystemBackend: afero.NewMemMapFs(), Path: otadataPath}

	active, err := di.Active()

	assert.NoError(t, err)
	assert.Equal(t, 0, active)
}

func TestDefaultImplActiveWithParseIntError(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, otadataPath, []byte("a"), 0644)

	di := DefaultImpl{FileSystemBackend: fs, Path: otadataPath}

	active, err := di.Active()

	assert.EqualError(t, err, "failed to parse otadata '/var/lib/sd-ota/otadata': strconv.ParseInt: parsing \"a\": invalid syntax")
	assert.Equal(t, 0, active)
}

func TestDefaultImplActiveWithOutOfRangeSlot(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, otadataPath, []byte("2"), 0644)

	di := DefaultImpl{FileSystemBackend: fs, Path: otadataPath}

	active, err := di.Active()

	assert.EqualError(t, err, "otadata '/var/lib/sd-ota/otadata' holds an invalid slot: 2")
	assert.Equal(t, 0, active)
}

func TestDefaultImplSetActive(t *testing.T) {
	fs := afero.NewMemMapFs()

	di := DefaultImpl{FileSystemBackend: fs, Path: otadataPath}

	err := di.SetActive(1)
	assert.NoError(t, err)

	data, err := afero.ReadFile(fs, otadataPath)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", string(data))

	active, err := di.Active()
	assert.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestDefaultImplSetActiveWithInvalidSlot(t *testing.T) {
	di := DefaultImpl{FileSystemBackend: afero.NewMemMapFs(), Path: otadataPath}

	err := di.SetActive(3)

	assert.EqualError(t, err, "invalid slot: 3")
}

func TestDefaultImplSetActiveWithReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	di := DefaultImpl{FileSystemBackend: fs, Path: otadataPath}

	err := di.SetActive(0)

	assert.Error(t, err)
}
