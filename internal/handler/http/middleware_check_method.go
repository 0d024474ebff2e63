// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/service"
	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. chi answers
// 405 when a path is known but its method is not; this API answers 404 so
// unsupported methods do not reveal which paths exist.
//
// A request whose method does match a route (as resolved by [chi.Mux.Match],
// path parameters included) is handed back to the router.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, service.ErrNotFound.Error(), http.StatusNotFound)
	}
}
