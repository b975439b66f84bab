/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package metadata

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// maxDescriptorLine bounds how much of the descriptor is read while
// looking for the first line terminator
const maxDescriptorLine = 4096

var (
	// ErrNoCandidate is returned when the descriptor is absent
	ErrNoCandidate = errors.New("no version descriptor found")
	// ErrInvalidVersion is returned when the descriptor content is not a
	// positive integer
	ErrInvalidVersion = errors.New("invalid version descriptor")
)

// ReadCandidate opens the descriptor at descriptorPath and parses its first
// line. A missing file, or a path that resolves to a directory, yields
// ErrNoCandidate. A descriptor that cannot be opened or read, or that
// holds unparsable content, yields ErrInvalidVersion.
func ReadCandidate(fsBackend afero.Fs, descriptorPath string) (CandidateVersion, error) {
	file, err := fsBackend.Open(descriptorPath)
	if os.IsNotExist(err) {
		log.Debug("version descriptor not available: ", err)
		return 0, ErrNoCandidate
	}

	if err != nil {
		return 0, errors.Wrap(ErrInvalidVersion, err.Error())
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, errors.Wrap(ErrInvalidVersion, err.Error())
	}

	if info.IsDir() {
		log.Warn("version descriptor '", descriptorPath, "' is a directory")
		return 0, ErrNoCandidate
	}

	line, err := readFirstLine(file)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidVersion, err.Error())
	}

	return ParseVersion(line)
}

func readFirstLine(r io.Reader) (string, error) {
	b := bufio.NewReader(io.LimitReader(r, maxDescriptorLine))

	line, err := b.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}

	return line, nil
}

// ParseVersion parses the leading decimal digits of the first line of s.
// Content after the first line terminator and after the digits is ignored.
// No digits, or a value of zero, is ErrInvalidVersion.
func ParseVersion(s string) (CandidateVersion, error) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimLeft(s, " \t")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0, errors.Wrapf(ErrInvalidVersion, "no digits in '%s'", strings.TrimSpace(s))
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, errors.Wrap(ErrInvalidVersion, err.Error())
	}

	if v == 0 {
		return 0, errors.Wrap(ErrInvalidVersion, "version zero")
	}

	return CandidateVersion(v), nil
}
