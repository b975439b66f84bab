/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package otaslot

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Trion/SD-OTA-Uploader/activeinactive"
)

// Error codes reported by ErrorCode. They are only meant to be logged.
const (
	ErrorOk          = 0
	ErrorWrite       = 1
	ErrorErase       = 2
	ErrorRead        = 3
	ErrorSpace       = 4
	ErrorSize        = 5
	ErrorStream      = 6
	ErrorMagicByte   = 8
	ErrorActivate    = 9
	ErrorNoPartition = 10
	ErrorBadArgument = 11
	ErrorAbort       = 12
)

var errorNames = map[int]string{
	ErrorOk:          "no error",
	ErrorWrite:       "flash write failed",
	ErrorErase:       "flash erase failed",
	ErrorRead:        "could not read slot metadata",
	ErrorSpace:       "not enough space",
	ErrorSize:        "bad size given",
	ErrorStream:      "stream read failed",
	ErrorMagicByte:   "wrong magic byte",
	ErrorActivate:    "could not activate the firmware",
	ErrorNoPartition: "partition could not be found",
	ErrorBadArgument: "bad argument",
	ErrorAbort:       "aborted",
}

// DefaultChunkSize is used when PartitionSlot.ChunkSize is not set
const DefaultChunkSize = 4 * 1024

// maxEmptyReads bounds how many consecutive (0, nil) reads are tolerated
const maxEmptyReads = 100

// Interface is the platform primitive used to stage a firmware image
type Interface interface {
	// Begin reserves size bytes in the update slot
	Begin(size int64) bool
	// WriteStream copies the reserved amount of bytes from r and returns
	// how many were written
	WriteStream(r io.Reader) int64
	// End finalizes the staged image
	End() bool
	// ErrorCode returns the code of the last failure
	ErrorCode() int
	// IsFinished reports whether every reserved byte was written
	IsFinished() bool
}

// ErrorString returns a human readable name for code
func ErrorString(code int) string {
	if s, ok := errorNames[code]; ok {
		return s
	}

	return fmt.Sprintf("unknown error %d", code)
}

// Partition is one slot partition (a device node or a regular file)
type Partition struct {
	Path string
	Size int64
}

// PartitionSlot stages the image into one of one or two partitions. With
// two partitions the inactive one is written and activated on End.
type PartitionSlot struct {
	FileSystemBackend afero.Fs
	ActiveInactive    activeinactive.Interface
	Partitions        []Partition
	ChunkSize         int
	// MagicByte is the expected first byte of the image, zero disables
	// the check
	MagicByte byte

	target    int
	size      int64
	progress  int64
	file      afero.File
	errorCode int
}

// Target returns the index of the partition chosen by the last Begin
func (s *PartitionSlot) Target() int {
	return s.target
}

// Begin selects the target partition and opens it for writing
func (s *PartitionSlot) Begin(size int64) bool {
	s.reset()

	if size <= 0 {
		return s.fail(ErrorSize)
	}

	if len(s.Partitions) == 0 || len(s.Partitions) > 2 {
		return s.fail(ErrorNoPartition)
	}

	// 2 partitions means that ActiveInactive is enabled
	if len(s.Partitions) == 2 {
		if s.ActiveInactive == nil {
			return s.fail(ErrorNoPartition)
		}

		activeIndex, err := s.ActiveInactive.Active()
		if err != nil {
			log.Error(err)
			return s.fail(ErrorRead)
		}

		s.target = (activeIndex - 1) * -1
	}

	partition := s.Partitions[s.target]
	if size > partition.Size {
		log.Error(fmt.Sprintf("image of %d bytes does not fit partition '%s' (%d bytes)", size, partition.Path, partition.Size))
		return s.fail(ErrorSpace)
	}

	file, err := s.FileSystemBackend.OpenFile(partition.Path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.Error(err)
		return s.fail(ErrorErase)
	}

	log.Debug(fmt.Sprintf("update slot %d ('%s') reserved for %d bytes", s.target, partition.Path, size))

	s.file = file
	s.size = size

	return true
}

// WriteStream copies from r until the reserved size is reached, r is
// exhausted or a failure occurs
func (s *PartitionSlot) WriteStream(r io.Reader) int64 {
	if s.file == nil {
		s.errorCode = ErrorBadArgument
		return 0
	}

	chunkSize := s.ChunkSize
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	buf := make([]byte, chunkSize)
	emptyReads := 0

	for s.progress < s.size {
		toRead := int64(len(buf))
		if remaining := s.size - s.progress; remaining < toRead {
			toRead = remaining
		}

		n, err := r.Read(buf[:toRead])

		if n > 0 {
			emptyReads = 0

			if s.progress == 0 && s.MagicByte != 0 && buf[0] != s.MagicByte {
				log.Error(fmt.Sprintf("image magic byte is 0x%02X, expected 0x%02X", buf[0], s.MagicByte))
				s.errorCode = ErrorMagicByte
				return s.progress
			}

			written, werr := s.file.Write(buf[:n])
			s.progress += int64(written)

			if werr != nil {
				log.Error(werr)
				s.errorCode = ErrorWrite
				return s.progress
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			log.Error(err)
			s.errorCode = ErrorStream
			return s.progress
		}

		if n == 0 {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				s.errorCode = ErrorStream
				return s.progress
			}
		}
	}

	return s.progress
}

// End closes the target partition and, with two partitions, marks it as
// active. It fails when bytes are still missing.
func (s *PartitionSlot) End() bool {
	if s.file == nil {
		return s.fail(ErrorAbort)
	}

	file := s.file
	s.file = nil

	if !s.IsFinished() {
		file.Close()
		log.Error(fmt.Sprintf("update slot finalized with %d of %d bytes", s.progress, s.size))
		return s.fail(ErrorAbort)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		log.Error(err)
		return s.fail(ErrorWrite)
	}

	if err := file.Close(); err != nil {
		log.Error(err)
		return s.fail(ErrorWrite)
	}

	if len(s.Partitions) == 2 {
		if err := s.ActiveInactive.SetActive(s.target); err != nil {
			return s.fail(ErrorActivate)
		}

		log.Info("ActiveInactive activated: ", s.target)
	}

	return true
}

// ErrorCode is for the Interface implementation
func (s *PartitionSlot) ErrorCode() int {
	return s.errorCode
}

// IsFinished is for the Interface implementation
func (s *PartitionSlot) IsFinished() bool {
	return s.size > 0 && s.progress == s.size
}

func (s *PartitionSlot) reset() {
	if s.file != nil {
		s.file.Close()
	}

	s.target = 0
	s.size = 0
	s.progress = 0
	s.file = nil
	s.errorCode = ErrorOk
}

func (s *PartitionSlot) fail(code int) bool {
	s.errorCode = code
	return false
}
