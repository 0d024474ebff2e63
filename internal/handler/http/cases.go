// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

// caseFilterFromQuery reads the optional status, division and process_number
// query parameters.
func caseFilterFromQuery(r *http.Request) models.CaseFilter {
	q := r.URL.Query()
	return models.CaseFilter{
		Status:        models.CaseStatus(strings.TrimSpace(q.Get("status"))),
		Division:      strings.TrimSpace(q.Get("division")),
		ProcessNumber: strings.TrimSpace(q.Get("process_number")),
	}
}

func (h *Handler) listCases(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listCases", err)
		return
	}

	cases, err := h.services.CaseService.ListCases(r.Context(), id.UserID, caseFilterFromQuery(r))
	if err != nil {
		writeServiceError(w, r, "*Handler.listCases", err)
		return
	}
	if cases == nil {
		cases = []models.Case{}
	}

	utils.WriteJSON(w, cases, http.StatusOK)
}

func (h *Handler) createCase(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.createCase", err)
		return
	}

	var req models.NewCaseRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.createCase", err)
		return
	}

	created, err := h.services.CaseService.CreateCase(r.Context(), id.UserID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createCase", err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) divisions(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.divisions", err)
		return
	}

	resp, err := h.services.CaseService.Divisions(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, "*Handler.divisions", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) getCase(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.getCase", err)
		return
	}

	c, err := h.services.CaseService.GetCase(r.Context(), id.UserID, caseID)
	if err != nil {
		writeServiceError(w, r, "*Handler.getCase", err)
		return
	}

	utils.WriteJSON(w, c, http.StatusOK)
}

func (h *Handler) deleteCase(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteCase", err)
		return
	}

	if err = h.services.CaseService.DeleteCase(r.Context(), id.UserID, caseID); err != nil {
		writeServiceError(w, r, "*Handler.deleteCase", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setCaseStatus(w http.ResponseWriter, r *http.Request) {
	var req models.StatusRequest
	h.caseTransition(w, r, "*Handler.setCaseStatus", &req, func(userID, caseID int64) (models.Case, error) {
		return h.services.CaseService.SetStatus(r.Context(), userID, caseID, req)
	})
}

func (h *Handler) finalizeCase(w http.ResponseWriter, r *http.Request) {
	var req models.FinalizeRequest
	h.caseTransition(w, r, "*Handler.finalizeCase", &req, func(userID, caseID int64) (models.Case, error) {
		return h.services.CaseService.Finalize(r.Context(), userID, caseID, req)
	})
}

func (h *Handler) registerPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	h.caseTransition(w, r, "*Handler.registerPayment", &req, func(userID, caseID int64) (models.Case, error) {
		return h.services.CaseService.RegisterPayment(r.Context(), userID, caseID, req)
	})
}

// caseTransition decodes the body into req and answers with the case
// returned by apply.
func (h *Handler) caseTransition(w http.ResponseWriter, r *http.Request, fn string, req any,
	apply func(userID, caseID int64) (models.Case, error)) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	if err = decodeJSON(r, req); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	c, err := apply(id.UserID, caseID)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, c, http.StatusOK)
}

func caseTarget(r *http.Request) (models.Identity, int64, error) {
	id, err := identity(r)
	if err != nil {
		return models.Identity{}, 0, err
	}
	caseID, err := pathID(r, caseIDParam)
	if err != nil {
		return models.Identity{}, 0, err
	}
	return id, caseID, nil
}
