// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/reset", h.resetPassword)
		r.Get("/api/version/", h.getServerVersion)
	})

	// reachable while a password change is pending
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/password", h.changePassword)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requirePasswordChanged, h.adminOnly)
		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users/{userID}/reset", h.forceReset)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requirePasswordChanged)

		r.Get("/api/cases", h.listCases)
		r.Post("/api/cases", h.createCase)
		r.Get("/api/cases/divisions", h.divisions)
		r.Get("/api/cases/{caseID}", h.getCase)
		r.Delete("/api/cases/{caseID}", h.deleteCase)
		r.Put("/api/cases/{caseID}/status", h.setCaseStatus)
		r.Post("/api/cases/{caseID}/finalize", h.finalizeCase)
		r.Post("/api/cases/{caseID}/payment", h.registerPayment)
		r.Get("/api/cases/{caseID}/interviews", h.listCaseInterviews)
		r.Post("/api/cases/{caseID}/interviews", h.addInterview)
		r.Put("/api/cases/{caseID}/report", h.uploadReport)
		r.Get("/api/cases/{caseID}/report", h.downloadReport)

		r.Get("/api/interviews/upcoming", h.upcomingInterviews)
		r.Get("/api/interviews/calendar", h.monthCalendar)
		r.Put("/api/interviews/{interviewID}/status", h.setInterviewStatus)
		r.Delete("/api/interviews/{interviewID}", h.deleteInterview)

		r.Get("/api/finance/summary", h.financeSummary)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
