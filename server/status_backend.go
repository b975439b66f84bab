/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Trion/SD-OTA-Uploader/sdota"
)

// StatusBackend exposes the result of the boot attempt in read-only
// routes
type StatusBackend struct {
	*sdota.SDOta

	Version string
}

func NewStatusBackend(so *sdota.SDOta, version string) *StatusBackend {
	return &StatusBackend{SDOta: so, Version: version}
}

func (sb *StatusBackend) Routes() []Route {
	return []Route{
		{Method: "GET", Path: "/info", Handle: sb.info},
		{Method: "GET", Path: "/status", Handle: sb.status},
	}
}

func (sb *StatusBackend) info(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out := map[string]interface{}{}

	out["version"] = sb.Version
	out["running-version"] = int(sb.SDOta.RunningVersion)
	out["config"] = sb.SDOta.Settings

	writeJSON(w, out)
}

func (sb *StatusBackend) status(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	writeJSON(w, sb.SDOta.StatusMap())
}

func writeJSON(w http.ResponseWriter, out map[string]interface{}) {
	outputJSON, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		w.WriteHeader(500)
		fmt.Fprint(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	fmt.Fprint(w, string(outputJSON))
}
