/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Trion/SD-OTA-Uploader/activeinactive"
	"github.com/Trion/SD-OTA-Uploader/indicator"
	"github.com/Trion/SD-OTA-Uploader/otaslot"
	"github.com/Trion/SD-OTA-Uploader/sdota"
	"github.com/Trion/SD-OTA-Uploader/storage"
	"github.com/Trion/SD-OTA-Uploader/utils"
)

// loadSettings reads the settings file, falling back to the defaults when
// there is none
func loadSettings(fs afero.Fs, settingsPath string) (*sdota.Settings, error) {
	file, err := fs.Open(settingsPath)
	if os.IsNotExist(err) {
		log.Debug(fmt.Sprintf("settings file '%s' not found, using defaults", settingsPath))
		return sdota.DefaultSettings(), nil
	}

	if err != nil {
		return nil, err
	}
	defer file.Close()

	settings, err := sdota.LoadSettings(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings '%s': %s", settingsPath, err)
	}

	return settings, nil
}

func newStorageDriver(fs afero.Fs, settings *sdota.Settings) storage.Driver {
	if settings.Device == "" {
		return &storage.DirectoryDriver{
			FileSystemBackend: fs,
			MountPath:         settings.MountPath,
		}
	}

	return &storage.DeviceDriver{
		FileSystemBackend: fs,
		CmdLineExecuter:   &utils.CmdLine{},
		DeviceFormat:      settings.Device,
		MountPath:         settings.MountPath,
		FsType:            settings.FsType,
	}
}

func newSlot(fs afero.Fs, settings *sdota.Settings) *otaslot.PartitionSlot {
	partitions := []otaslot.Partition{}
	for _, p := range settings.SlotPaths {
		partitions = append(partitions, otaslot.Partition{Path: p, Size: settings.SlotSize})
	}

	return &otaslot.PartitionSlot{
		FileSystemBackend: fs,
		ActiveInactive: &activeinactive.DefaultImpl{
			FileSystemBackend: fs,
			Path:              settings.OtaDataPath,
		},
		Partitions: partitions,
		ChunkSize:  settings.ChunkSize,
		MagicByte:  byte(settings.MagicByte),
	}
}

func newPanel(fs afero.Fs, settings *sdota.Settings) indicator.Panel {
	if settings.GPIOPath == "" {
		return &indicator.LogPanel{}
	}

	panel := &indicator.GPIOPanel{
		FileSystemBackend: fs,
		BasePath:          settings.GPIOPath,
		MountOkPin:        settings.MountOkPin,
		ActivePin:         settings.ActivePin,
		SuccessPin:        settings.SuccessPin,
		ErrorPin:          settings.ErrorPin,
	}

	if err := panel.Setup(); err != nil {
		log.Warn("status indicators unavailable: ", err)
		return &indicator.LogPanel{}
	}

	return panel
}

func newRebooter(settings *sdota.Settings) utils.Rebooter {
	r := utils.NewRebooter()

	if settings.RebootCommand != "" {
		r.Command = settings.RebootCommand
	}

	return r
}
