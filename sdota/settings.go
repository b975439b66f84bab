/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sdota

import (
	"fmt"
	"io"
	"time"

	"github.com/go-ini/ini"

	"github.com/Trion/SD-OTA-Uploader/indicator"
)

const (
	// SettingsPath is where the settings file is looked up by default
	SettingsPath = "/etc/sd-ota.conf"

	defaultChipSelect     = 5
	defaultMountPath      = "/media/sd"
	defaultDescriptorPath = "/version.txt"
	defaultPayloadPath    = "/firmware.bin"
	defaultSlotSize       = 0x1E0000
	defaultOtaDataPath    = "/var/lib/sd-ota/otadata"
	defaultChunkSize      = 4096
	defaultBlinkCount     = 10
	defaultBlinkInterval  = 200 * time.Millisecond
)

type Settings struct {
	StorageSettings   `ini:"Storage" json:"storage"`
	UpdateSettings    `ini:"Update" json:"update"`
	RecoverySettings  `ini:"Recovery" json:"recovery"`
	IndicatorSettings `ini:"Indicator" json:"indicator"`
	ServerSettings    `ini:"Server" json:"server"`
	LogSettings       `ini:"Log" json:"log"`
}

type StorageSettings struct {
	ChipSelect int    `ini:"ChipSelect" json:"chip-select"`
	MountPath  string `ini:"MountPath" json:"mount-path"`
	Device     string `ini:"Device" json:"device"`
	FsType     string `ini:"FsType" json:"fs-type"`
}

type UpdateSettings struct {
	DescriptorPath string   `ini:"DescriptorPath" json:"descriptor-path"`
	PayloadPath    string   `ini:"PayloadPath" json:"payload-path"`
	SlotPaths      []string `ini:"SlotPaths" json:"slot-paths"`
	SlotSize       int64    `ini:"SlotSize" json:"slot-size"`
	OtaDataPath    string   `ini:"OtaDataPath" json:"otadata-path"`
	ChunkSize      int      `ini:"ChunkSize" json:"chunk-size"`
	MagicByte      int      `ini:"MagicByte" json:"magic-byte"`
}

type RecoverySettings struct {
	BlinkCount    int           `ini:"BlinkCount" json:"blink-count"`
	BlinkInterval time.Duration `ini:"BlinkInterval" json:"blink-interval"`
	RebootCommand string        `ini:"RebootCommand" json:"reboot-command"`
}

type IndicatorSettings struct {
	GPIOPath   string `ini:"GPIOPath" json:"gpio-path"`
	MountOkPin int    `ini:"MountOkPin" json:"mount-ok-pin"`
	ActivePin  int    `ini:"ActivePin" json:"active-pin"`
	SuccessPin int    `ini:"SuccessPin" json:"success-pin"`
	ErrorPin   int    `ini:"ErrorPin" json:"error-pin"`
}

type ServerSettings struct {
	ServerEnabled bool   `ini:"Enabled" json:"enabled"`
	ServerAddress string `ini:"Address" json:"address"`
}

type LogSettings struct {
	LogLevel string `ini:"Level" json:"level"`
}

func init() {
	ini.PrettyFormat = false
}

// DefaultSettings returns the settings used when no file is given
func DefaultSettings() *Settings {
	return &Settings{
		StorageSettings: StorageSettings{
			ChipSelect: defaultChipSelect,
			MountPath:  defaultMountPath,
			Device:     "",
			FsType:     "vfat",
		},

		UpdateSettings: UpdateSettings{
			DescriptorPath: defaultDescriptorPath,
			PayloadPath:    defaultPayloadPath,
			SlotPaths:      []string{"/dev/ota_0", "/dev/ota_1"},
			SlotSize:       defaultSlotSize,
			OtaDataPath:    defaultOtaDataPath,
			ChunkSize:      defaultChunkSize,
			MagicByte:      0,
		},

		RecoverySettings: RecoverySettings{
			BlinkCount:    defaultBlinkCount,
			BlinkInterval: defaultBlinkInterval,
			RebootCommand: "/sbin/reboot",
		},

		IndicatorSettings: IndicatorSettings{
			GPIOPath:   indicator.DefaultGPIOPath,
			MountOkPin: 2,
			ActivePin:  4,
			SuccessPin: 16,
			ErrorPin:   17,
		},

		ServerSettings: ServerSettings{
			ServerEnabled: false,
			ServerAddress: "localhost:8080",
		},

		LogSettings: LogSettings{
			LogLevel: "info",
		},
	}
}

// LoadSettings maps the INI content of r over the default settings
func LoadSettings(r io.Reader) (*Settings, error) {
	cfg, err := ini.Load(io.NopCloser(r))
	if err != nil || cfg == nil {
		return nil, err
	}

	s := DefaultSettings()

	err = cfg.MapTo(s)
	if err != nil {
		return nil, err
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks values the updater cannot work without
func (s *Settings) Validate() error {
	if s.DescriptorPath == "" || s.PayloadPath == "" {
		return fmt.Errorf("descriptor and payload paths must be set")
	}

	if len(s.SlotPaths) < 1 || len(s.SlotPaths) > 2 {
		return fmt.Errorf("1 or 2 slot paths are required. Found %d", len(s.SlotPaths))
	}

	if s.SlotSize <= 0 {
		return fmt.Errorf("invalid slot size: %d", s.SlotSize)
	}

	if s.ChunkSize < 1 {
		return fmt.Errorf("invalid chunk size: %d", s.ChunkSize)
	}

	if s.MagicByte < 0 || s.MagicByte > 0xFF {
		return fmt.Errorf("invalid magic byte: %d", s.MagicByte)
	}

	if s.BlinkCount < 0 {
		return fmt.Errorf("invalid blink count: %d", s.BlinkCount)
	}

	return nil
}
