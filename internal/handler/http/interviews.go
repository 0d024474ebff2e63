// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pericias/internal/utils"
	"github.com/MKhiriev/go-pericias/models"
)

func (h *Handler) listCaseInterviews(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.listCaseInterviews", err)
		return
	}

	interviews, err := h.services.InterviewService.ListCaseInterviews(r.Context(), id.UserID, caseID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listCaseInterviews", err)
		return
	}

	utils.WriteJSON(w, interviews, http.StatusOK)
}

func (h *Handler) addInterview(w http.ResponseWriter, r *http.Request) {
	id, caseID, err := caseTarget(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.addInterview", err)
		return
	}

	var req models.NewInterviewRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.addInterview", err)
		return
	}

	iv, err := h.services.InterviewService.AddInterview(r.Context(), id.UserID, caseID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.addInterview", err)
		return
	}

	utils.WriteJSON(w, iv, http.StatusCreated)
}

func (h *Handler) setInterviewStatus(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.setInterviewStatus", err)
		return
	}

	interviewID, err := pathID(r, interviewIDParam)
	if err != nil {
		writeServiceError(w, r, "*Handler.setInterviewStatus", err)
		return
	}

	var req models.InterviewStatusRequest
	if err = decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, "*Handler.setInterviewStatus", err)
		return
	}

	iv, err := h.services.InterviewService.SetInterviewStatus(r.Context(), id.UserID, interviewID, req)
	if err != nil {
		writeServiceError(w, r, "*Handler.setInterviewStatus", err)
		return
	}

	utils.WriteJSON(w, iv, http.StatusOK)
}

func (h *Handler) deleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteInterview", err)
		return
	}

	interviewID, err := pathID(r, interviewIDParam)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteInterview", err)
		return
	}

	if err = h.services.InterviewService.DeleteInterview(r.Context(), id.UserID, interviewID); err != nil {
		writeServiceError(w, r, "*Handler.deleteInterview", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) upcomingInterviews(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.upcomingInterviews", err)
		return
	}

	upcoming, err := h.services.InterviewService.UpcomingInterviews(r.Context(), id.UserID)
	if err != nil {
		writeServiceError(w, r, "*Handler.upcomingInterviews", err)
		return
	}

	utils.WriteJSON(w, upcoming, http.StatusOK)
}

// monthCalendar answers the calendar of ?year=&month=, defaulting to the
// current month.
func (h *Handler) monthCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.monthCalendar", err)
		return
	}

	now := time.Now()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		writeServiceError(w, r, "*Handler.monthCalendar", err)
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		writeServiceError(w, r, "*Handler.monthCalendar", err)
		return
	}

	cal, err := h.services.InterviewService.MonthCalendar(r.Context(), id.UserID, year, month)
	if err != nil {
		writeServiceError(w, r, "*Handler.monthCalendar", err)
		return
	}

	utils.WriteJSON(w, cal, http.StatusOK)
}
