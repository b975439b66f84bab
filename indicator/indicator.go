/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package indicator

import (
	"fmt"
	"path"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultGPIOPath is where the sysfs GPIO interface lives
const DefaultGPIOPath = "/sys/class/gpio"

// Panel drives the four status output channels. Writes are not read back.
type Panel interface {
	SetMountOk(on bool)
	SetActive(on bool)
	SetSuccess(on bool)
	SetError(on bool)
}

// State is the value of every output channel
type State struct {
	MountOk bool `json:"mount-ok"`
	Active  bool `json:"active"`
	Success bool `json:"success"`
	Error   bool `json:"error"`
}

// Blink alternates set on and off count times, waiting interval after each
// write. The channel is left off.
func Blink(set func(on bool), count int, interval time.Duration, sleep func(time.Duration)) {
	if sleep == nil {
		sleep = time.Sleep
	}

	for i := 0; i < count; i++ {
		set(true)
		sleep(interval)
		set(false)
		sleep(interval)
	}
}

// GPIOPanel drives each channel through a sysfs GPIO line. A negative pin
// disables its channel.
type GPIOPanel struct {
	FileSystemBackend afero.Fs
	BasePath          string

	MountOkPin int
	ActivePin  int
	SuccessPin int
	ErrorPin   int
}

func (p *GPIOPanel) basePath() string {
	if p.BasePath == "" {
		return DefaultGPIOPath
	}

	return p.BasePath
}

func (p *GPIOPanel) pins() []int {
	return []int{p.MountOkPin, p.ActivePin, p.SuccessPin, p.ErrorPin}
}

// Setup exports every enabled pin and configures it as a low output
func (p *GPIOPanel) Setup() error {
	for _, pin := range p.pins() {
		if pin < 0 {
			continue
		}

		pinDir := path.Join(p.basePath(), fmt.Sprintf("gpio%d", pin))

		exported, err := afero.DirExists(p.FileSystemBackend, pinDir)
		if err != nil {
			return err
		}

		if !exported {
			err = afero.WriteFile(p.FileSystemBackend, path.Join(p.basePath(), "export"), []byte(strconv.Itoa(pin)), 0200)
			if err != nil {
				return fmt.Errorf("failed to export gpio %d: %s", pin, err)
			}
		}

		err = afero.WriteFile(p.FileSystemBackend, path.Join(pinDir, "direction"), []byte("low"), 0644)
		if err != nil {
			return fmt.Errorf("failed to set gpio %d direction: %s", pin, err)
		}
	}

	return nil
}

func (p *GPIOPanel) write(pin int, on bool) {
	if pin < 0 {
		return
	}

	value := "0"
	if on {
		value = "1"
	}

	valuePath := path.Join(p.basePath(), fmt.Sprintf("gpio%d", pin), "value")

	err := afero.WriteFile(p.FileSystemBackend, valuePath, []byte(value), 0644)
	if err != nil {
		log.Warn(fmt.Sprintf("failed to write gpio %d: %s", pin, err))
	}
}

// SetMountOk is for the Panel implementation
func (p *GPIOPanel) SetMountOk(on bool) {
	p.write(p.MountOkPin, on)
}

// SetActive is for the Panel implementation
func (p *GPIOPanel) SetActive(on bool) {
	p.write(p.ActivePin, on)
}

// SetSuccess is for the Panel implementation
func (p *GPIOPanel) SetSuccess(on bool) {
	p.write(p.SuccessPin, on)
}

// SetError is for the Panel implementation
func (p *GPIOPanel) SetError(on bool) {
	p.write(p.ErrorPin, on)
}

// LogPanel only logs channel changes, for boards without status outputs
type LogPanel struct {
}

func logChannel(name string, on bool) {
	log.Debug(fmt.Sprintf("indicator %s: %t", name, on))
}

// SetMountOk is for the Panel implementation
func (LogPanel) SetMountOk(on bool) {
	logChannel("mount-ok", on)
}

// SetActive is for the Panel implementation
func (LogPanel) SetActive(on bool) {
	logChannel("active", on)
}

// SetSuccess is for the Panel implementation
func (LogPanel) SetSuccess(on bool) {
	logChannel("success", on)
}

// SetError is for the Panel implementation
func (LogPanel) SetError(on bool) {
	logChannel("error", on)
}
