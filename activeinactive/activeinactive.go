/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package activeinactive

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Interface describes the operations related to the Active-Inactive feature
type Interface interface {
	Active() (int, error)
	SetActive(active int) error
}

// DefaultImpl keeps the active slot number in a small otadata file. A
// missing file means slot 0 is active.
type DefaultImpl struct {
	FileSystemBackend afero.Fs
	Path              string
}

// Active returns the current active slot number
func (i *DefaultImpl) Active() (int, error) {
	data, err := afero.ReadFile(i.FileSystemBackend, i.Path)
	if os.IsNotExist(err) {
		log.Debug("otadata not found, assuming slot 0 is active")
		return 0, nil
	}

	if err != nil {
		finalErr := fmt.Errorf("failed to read otadata '%s': %s", i.Path, err)
		log.Error(finalErr)
		return 0, finalErr
	}

	activeIndex, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 0)
	if err != nil {
		finalErr := fmt.Errorf("failed to parse otadata '%s': %s", i.Path, err)
		log.Error(finalErr)
		return 0, finalErr
	}

	if activeIndex != 0 && activeIndex != 1 {
		finalErr := fmt.Errorf("otadata '%s' holds an invalid slot: %d", i.Path, activeIndex)
		log.Error(finalErr)
		return 0, finalErr
	}

	log.Debug("active slot: ", int(activeIndex))

	return int(activeIndex), nil
}

// SetActive sets the slot the device boots from next to "active"
func (i *DefaultImpl) SetActive(active int) error {
	if active != 0 && active != 1 {
		return fmt.Errorf("invalid slot: %d", active)
	}

	log.Debug("setting active slot: ", active)

	err := i.FileSystemBackend.MkdirAll(path.Dir(i.Path), 0755)
	if err != nil {
		finalErr := fmt.Errorf("failed to create otadata directory: %s", err)
		log.Error(finalErr)
		return finalErr
	}

	err = afero.WriteFile(i.FileSystemBackend, i.Path, []byte(strconv.Itoa(active)+"\n"), 0644)
	if err != nil {
		finalErr := fmt.Errorf("failed to write otadata '%s': %s", i.Path, err)
		log.Error(finalErr)
		return finalErr
	}

	return nil
}
