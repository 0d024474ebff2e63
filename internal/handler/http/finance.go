// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pericias/internal/utils"
)

func (h *Handler) financeSummary(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.financeSummary", err)
		return
	}

	summary, err := h.services.FinanceService.Summary(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, "*Handler.financeSummary", err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
