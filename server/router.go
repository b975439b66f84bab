/*
 * UpdateHub
 * Copyright (C) 2017
 * O.S. Systems Sofware LTDA: contato@ossystems.com.br
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package server

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

type BackendRouter struct {
	HTTPRouter *httprouter.Router
	backend    Backend
}

// NewBackendRouter registers every route of b
func NewBackendRouter(b Backend) *BackendRouter {
	br := &BackendRouter{HTTPRouter: httprouter.New(), backend: b}

	for _, route := range b.Routes() {
		br.HTTPRouter.Handle(route.Method, route.Path, logRequest(route.Handle))
	}

	return br
}

func (br *BackendRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	br.HTTPRouter.ServeHTTP(w, req)
}

func logRequest(h httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		log.Debug(r.Method, " ", r.URL.Path)
		h(w, r, p)
	}
}
