/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package otaslot

import (
	"bytes"
	"fmt"
	"testing"
	"testing/iotest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/Trion/SD-OTA-Uploader/testsmocks/activeinactivemock"
)

func newSinglePartitionSlot(fs afero.Fs, size int64) *PartitionSlot {
	return &PartitionSlot{
		FileSystemBackend: fs,
		Partitions:        []Partition{{Path: "/dev/ota_0", Size: size}},
		ChunkSize:         16,
	}
}

func TestPartitionSlotWriteFullImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	image := bytes.Repeat([]byte{0xE9, 0x01, 0x02, 0x03}, 256)

	s := newSinglePartitionSlot(fs, 4096)

	assert.True(t, s.Begin(int64(len(image))))
	assert.Equal(t, int64(len(image)), s.WriteStream(bytes.NewReader(image)))
	assert.True(t, s.IsFinished())
	assert.True(t, s.End())
	assert.Equal(t, ErrorOk, s.ErrorCode())

	data, err := afero.ReadFile(fs, "/dev/ota_0")
	assert.NoError(t, err)
	assert.Equal(t, image, data)
}

func TestPartitionSlotWriteStopsAtReservedSize(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := newSinglePartitionSlot(fs, 4096)

	assert.True(t, s.Begin(10))
	assert.Equal(t, int64(10), s.WriteStream(bytes.NewReader(make([]byte, 100))))
	assert.True(t, s.End())

	data, err := afero.ReadFile(fs, "/dev/ota_0")
	assert.NoError(t, err)
	assert.Len(t, data, 10)
}

func TestPartitionSlotBeginWithoutSpace(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := newSinglePartitionSlot(fs, 512)

	assert.False(t, s.Begin(1024))
	assert.Equal(t, ErrorSpace, s.ErrorCode())

	exists, err := afero.Exists(fs, "/dev/ota_0")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, int64(0), s.WriteStream(bytes.NewReader(make([]byte, 1024))))
	assert.Equal(t, ErrorBadArgument, s.ErrorCode())
}

func TestPartitionSlotBeginWithBadSize(t *testing.T) {
	s := newSinglePartitionSlot(afero.NewMemMapFs(), 512)

	assert.False(t, s.Begin(0))
	assert.Equal(t, ErrorSize, s.ErrorCode())
}

func TestPartitionSlotBeginWithoutPartitions(t *testing.T) {
	s := &PartitionSlot{FileSystemBackend: afero.NewMemMapFs()}

	assert.False(t, s.Begin(10))
	assert.Equal(t, ErrorNoPartition, s.ErrorCode())
}

func TestPartitionSlotBeginWithOpenError(t *testing.T) {
	s := newSinglePartitionSlot(afero.NewReadOnlyFs(afero.NewMemMapFs()), 512)

	assert.False(t, s.Begin(10))
	assert.Equal(t, ErrorErase, s.ErrorCode())
}

func TestPartitionSlotIncompleteStream(t *testing.T) {
	fs := afero.NewMemMapFs()

	s := newSinglePartitionSlot(fs, 4096)

	assert.True(t, s.Begin(1024))
	assert.Equal(t, int64(1023), s.WriteStream(bytes.NewReader(make([]byte, 1023))))
	assert.False(t, s.IsFinished())
	assert.False(t, s.End())
	assert.Equal(t, ErrorAbort, s.ErrorCode())
}

func TestPartitionSlotStreamError(t *testing.T) {
	s := newSinglePartitionSlot(afero.NewMemMapFs(), 4096)

	assert.True(t, s.Begin(1024))
	assert.Equal(t, int64(0), s.WriteStream(iotest.ErrReader(fmt.Errorf("card removed"))))
	assert.Equal(t, ErrorStream, s.ErrorCode())
	assert.False(t, s.IsFinished())
}

func TestPartitionSlotMagicByte(t *testing.T) {
	s := newSinglePartitionSlot(afero.NewMemMapFs(), 4096)
	s.MagicByte = 0xE9

	assert.True(t, s.Begin(4))
	assert.Equal(t, int64(0), s.WriteStream(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03})))
	assert.Equal(t, ErrorMagicByte, s.ErrorCode())

	assert.True(t, s.Begin(4))
	assert.Equal(t, int64(4), s.WriteStream(bytes.NewReader([]byte{0xE9, 0x01, 0x02, 0x03})))
	assert.True(t, s.End())
}

func TestPartitionSlotEndWithoutBegin(t *testing.T) {
	s := newSinglePartitionSlot(afero.NewMemMapFs(), 4096)

	assert.False(t, s.End())
	assert.Equal(t, ErrorAbort, s.ErrorCode())
	assert.False(t, s.IsFinished())
}

func TestPartitionSlotActiveInactive(t *testing.T) {
	testCases := []struct {
		name           string
		active         int
		expectedTarget int
		expectedPath   string
	}{
		{"ActiveZero", 0, 1, "/dev/ota_1"},
		{"ActiveOne", 1, 0, "/dev/ota_0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()

			aim := &activeinactivemock.ActiveInactiveMock{}
			aim.On("Active").Return(tc.active, nil)
			aim.On("SetActive", tc.expectedTarget).Return(nil)

			s := &PartitionSlot{
				FileSystemBackend: fs,
				ActiveInactive:    aim,
				Partitions: []Partition{
					{Path: "/dev/ota_0", Size: 64},
					{Path: "/dev/ota_1", Size: 64},
				},
			}

			assert.True(t, s.Begin(8))
			assert.Equal(t, tc.expectedTarget, s.Target())
			assert.Equal(t, int64(8), s.WriteStream(bytes.NewReader([]byte("firmware"))))
			assert.True(t, s.End())

			data, err := afero.ReadFile(fs, tc.expectedPath)
			assert.NoError(t, err)
			assert.Equal(t, "firmware", string(data))

			aim.AssertExpectations(t)
		})
	}
}

func TestPartitionSlotActiveInactiveWithActiveError(t *testing.T) {
	aim := &activeinactivemock.ActiveInactiveMock{}
	aim.On("Active").Return(0, fmt.Errorf("otadata corrupted"))

	s := &PartitionSlot{
		FileSystemBackend: afero.NewMemMapFs(),
		ActiveInactive:    aim,
		Partitions: []Partition{
			{Path: "/dev/ota_0", Size: 64},
			{Path: "/dev/ota_1", Size: 64},
		},
	}

	assert.False(t, s.Begin(8))
	assert.Equal(t, ErrorRead, s.ErrorCode())

	aim.AssertExpectations(t)
}

func TestPartitionSlotActiveInactiveWithSetActiveError(t *testing.T) {
	aim := &activeinactivemock.ActiveInactiveMock{}
	aim.On("Active").Return(1, nil)
	aim.On("SetActive", 0).Return(fmt.Errorf("otadata write error"))

	s := &PartitionSlot{
		FileSystemBackend: afero.NewMemMapFs(),
		ActiveInactive:    aim,
		Partitions: []Partition{
			{Path: "/dev/ota_0", Size: 64},
			{Path: "/dev/ota_1", Size: 64},
		},
	}

	assert.True(t, s.Begin(8))
	assert.Equal(t, int64(8), s.WriteStream(bytes.NewReader([]byte("firmware"))))
	assert.False(t, s.End())
	assert.Equal(t, ErrorActivate, s.ErrorCode())
	assert.True(t, s.IsFinished())

	aim.AssertExpectations(t)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "not enough space", ErrorString(ErrorSpace))
	assert.Equal(t, "aborted", ErrorString(ErrorAbort))
	assert.Equal(t, "unknown error 42", ErrorString(42))
}
