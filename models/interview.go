// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InterviewStatus is the completion state of an [Interview].
type InterviewStatus string

const (
	InterviewPending InterviewStatus = "pending"
	InterviewDone    InterviewStatus = "done"
)

// Valid reports whether s is a known interview status.
func (s InterviewStatus) Valid() bool {
	return s == InterviewPending || s == InterviewDone
}

// Toggled returns the opposite status.
func (s InterviewStatus) Toggled() InterviewStatus {
	if s == InterviewDone {
		return InterviewPending
	}
	return InterviewDone
}

// Label returns the human-readable name of s.
func (s InterviewStatus) Label() string {
	switch s {
	case InterviewPending:
		return "Pending"
	case InterviewDone:
		return "Done"
	default:
		return string(s)
	}
}

// Interview is a scheduled interview belonging to exactly one case.
type Interview struct {
	ID     int64 `json:"id"`
	CaseID int64 `json:"case_id"`
	Date   Date  `json:"date"`
	// Time is the "HH:MM" time of day.
	Time            string          `json:"time"`
	IntervieweeName string          `json:"interviewee_name"`
	Status          InterviewStatus `json:"status"`
}

// NewInterviewRequest is the payload for scheduling an interview.
type NewInterviewRequest struct {
	Date            Date   `json:"date"`
	Time            string `json:"time"`
	IntervieweeName string `json:"interviewee_name"`
}

// InterviewStatusRequest sets the status of an interview.
type InterviewStatusRequest struct {
	Status InterviewStatus `json:"status"`
}

// UpcomingInterview is a pending interview together with its case context.
type UpcomingInterview struct {
	Interview
	ProcessNumber string `json:"process_number"`
	ActionClass   string `json:"action_class"`
	Division      string `json:"division"`
}

// CalendarDay counts the interviews scheduled on a single day.
type CalendarDay struct {
	Date    Date `json:"date"`
	Pending int  `json:"pending"`
	Total   int  `json:"total"`
}

// MonthCalendar is the interview schedule of one month.
type MonthCalendar struct {
	Year       int           `json:"year"`
	Month      int           `json:"month"`
	Interviews []Interview   `json:"interviews"`
	Days       []CalendarDay `json:"days"`
}
