/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"net/http"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Trion/SD-OTA-Uploader/metadata"
	"github.com/Trion/SD-OTA-Uploader/sdota"
	"github.com/Trion/SD-OTA-Uploader/server"
)

// firmwareVersion is set at build time with -ldflags "-X main.firmwareVersion=N"
var firmwareVersion = "1"

func main() {
	var settingsPath string
	var logLevel string

	cmd := &cobra.Command{
		Use:          "sd-ota",
		Short:        "Install a newer firmware image found on the SD card",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := run(afero.NewOsFs(), settingsPath, logLevel)
			if err != nil {
				return err
			}

			os.Exit(code)
			return nil
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", sdota.SettingsPath, "settings file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "overrides the log level from the settings file")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(osFs afero.Fs, settingsPath string, logLevel string) (int, error) {
	settings, err := loadSettings(osFs, settingsPath)
	if err != nil {
		return 1, err
	}

	if logLevel != "" {
		settings.LogLevel = logLevel
	}

	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return 1, err
	}

	log.SetLevel(level)

	runningVersion, err := metadata.NewRunningVersion(firmwareVersion)
	if err != nil {
		return 1, err
	}

	so := sdota.NewSDOta(
		runningVersion,
		settings,
		newStorageDriver(osFs, settings),
		newSlot(osFs, settings),
		newPanel(osFs, settings),
		newRebooter(settings))

	code := sdota.NewDaemon(so).Run()

	if code == 0 && settings.ServerEnabled {
		router := server.NewBackendRouter(server.NewStatusBackend(so, firmwareVersion))

		log.Info("serving status at ", settings.ServerAddress)

		if err := http.ListenAndServe(settings.ServerAddress, router.HTTPRouter); err != nil {
			return 1, err
		}
	}

	return code, nil
}
