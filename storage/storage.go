/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package storage

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Trion/SD-OTA-Uploader/utils"
)

// ErrNoMedia is returned when no medium is present
var ErrNoMedia = errors.New("no media present")

// Driver gives access to the removable medium selected by chipSelect.
// The returned filesystem is rooted at the medium's root directory.
type Driver interface {
	Mount(chipSelect int) (afero.Fs, error)
}

func checkChipSelect(chipSelect int) error {
	if chipSelect < 0 {
		return errors.Errorf("invalid chip-select: %d", chipSelect)
	}

	return nil
}

// DirectoryDriver serves a medium that is already mounted at MountPath
type DirectoryDriver struct {
	FileSystemBackend afero.Fs
	MountPath         string
}

// Mount returns the medium rooted at MountPath. A missing or empty mount
// point means no medium is present.
func (d *DirectoryDriver) Mount(chipSelect int) (afero.Fs, error) {
	if err := checkChipSelect(chipSelect); err != nil {
		return nil, err
	}

	log.Debug(fmt.Sprintf("looking for medium at '%s' (chip-select: %d)", d.MountPath, chipSelect))

	exists, err := afero.DirExists(d.FileSystemBackend, d.MountPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check mount path '%s'", d.MountPath)
	}

	if !exists {
		return nil, ErrNoMedia
	}

	// the mount point stays behind when the card is removed
	empty, err := afero.IsEmpty(d.FileSystemBackend, d.MountPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mount path '%s'", d.MountPath)
	}

	if empty {
		return nil, ErrNoMedia
	}

	return afero.NewBasePathFs(d.FileSystemBackend, d.MountPath), nil
}

// DeviceDriver mounts a block device at MountPath through the command
// line. DeviceFormat may hold a "%d" verb that is replaced by the
// chip-select.
type DeviceDriver struct {
	FileSystemBackend afero.Fs
	utils.CmdLineExecuter

	DeviceFormat string
	MountPath    string
	FsType       string
}

// DevicePath returns the block device node selected by chipSelect
func (d *DeviceDriver) DevicePath(chipSelect int) string {
	if strings.Contains(d.DeviceFormat, "%d") {
		return fmt.Sprintf(d.DeviceFormat, chipSelect)
	}

	return d.DeviceFormat
}

// Mount mounts the device node and returns the medium rooted at
// MountPath. A missing device node means no medium is present.
func (d *DeviceDriver) Mount(chipSelect int) (afero.Fs, error) {
	if err := checkChipSelect(chipSelect); err != nil {
		return nil, err
	}

	device := d.DevicePath(chipSelect)

	exists, err := afero.Exists(d.FileSystemBackend, device)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check device '%s'", device)
	}

	if !exists {
		return nil, ErrNoMedia
	}

	err = d.FileSystemBackend.MkdirAll(d.MountPath, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create mount path '%s'", d.MountPath)
	}

	fsType := d.FsType
	if fsType == "" {
		fsType = "auto"
	}

	log.Info(fmt.Sprintf("mounting '%s' at '%s' (fstype: %s)", device, d.MountPath, fsType))

	_, err = d.Execute(fmt.Sprintf("mount -t %s %s %s", fsType, device, d.MountPath))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mount '%s'", device)
	}

	return afero.NewBasePathFs(d.FileSystemBackend, d.MountPath), nil
}
