// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CaseStatus is the lifecycle state of a [Case].
type CaseStatus string

const (
	// CaseOpen is the initial state of every new case.
	CaseOpen CaseStatus = "open"
	// CaseInReview is an active, unfinished case whose report is being written.
	CaseInReview CaseStatus = "in_review"
	// CaseDelivered means the report was delivered and no payment is recorded.
	CaseDelivered CaseStatus = "delivered"
	// CaseReceived means the report was delivered and a payment was confirmed.
	CaseReceived CaseStatus = "received"
)

// CaseStatuses lists every status in lifecycle order.
var CaseStatuses = []CaseStatus{CaseOpen, CaseInReview, CaseDelivered, CaseReceived}

var caseStatusLabels = map[CaseStatus]string{
	CaseOpen:      "Open",
	CaseInReview:  "In Review",
	CaseDelivered: "Delivered",
	CaseReceived:  "Received",
}

// Valid reports whether s is one of [CaseStatuses].
func (s CaseStatus) Valid() bool {
	_, ok := caseStatusLabels[s]
	return ok
}

// Label returns the human-readable name of s.
func (s CaseStatus) Label() string {
	if label, ok := caseStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Active reports whether s is one of the unfinished states.
func (s CaseStatus) Active() bool {
	return s == CaseOpen || s == CaseInReview
}

// DeadlineTier is the urgency class of a case deadline.
type DeadlineTier string

const (
	// TierUrgent marks an overdue deadline.
	TierUrgent DeadlineTier = "urgent"
	// TierWarning marks a deadline at most seven days away.
	TierWarning DeadlineTier = "warning"
	// TierNormal marks every other deadline.
	TierNormal DeadlineTier = "normal"
)

// Deadline is the derived legal deadline of a case. It is never persisted.
type Deadline struct {
	Date          Date         `json:"date"`
	RemainingDays int          `json:"remaining_days"`
	Tier          DeadlineTier `json:"tier"`
}

// Case is a forensic-expertise engagement stored in its owner's partition.
type Case struct {
	ID int64 `json:"id"`

	// OwnerID is the user whose partition holds the case.
	OwnerID int64 `json:"-"`

	// Division is the court division the case belongs to.
	Division      string `json:"division"`
	ProcessNumber string `json:"process_number"`
	ActionClass   string `json:"action_class"`

	AppointmentDate Date `json:"appointment_date"`
	DeadlineDays    int  `json:"deadline_days"`

	// DeliveryDate is nil until the case is finalized.
	DeliveryDate *Date `json:"delivery_date,omitempty"`

	InterviewCount  int     `json:"interview_count"`
	PredictedAmount float64 `json:"predicted_amount"`
	ReceivedAmount  float64 `json:"received_amount"`

	Status    CaseStatus `json:"status"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`

	// Deadline is computed at read time by the service layer.
	Deadline *Deadline `json:"deadline,omitempty"`
}

// NewCaseRequest is the payload for registering a case.
type NewCaseRequest struct {
	Division        string  `json:"division"`
	ProcessNumber   string  `json:"process_number"`
	ActionClass     string  `json:"action_class"`
	AppointmentDate Date    `json:"appointment_date"`
	DeadlineDays    int     `json:"deadline_days"`
	InterviewCount  int     `json:"interview_count"`
	PredictedAmount float64 `json:"predicted_amount"`
	Notes           string  `json:"notes"`
}

// CaseFilter holds the optional, AND-combined predicates of a case listing.
// Zero fields match everything.
type CaseFilter struct {
	Status        CaseStatus `json:"status,omitempty"`
	Division      string     `json:"division,omitempty"`
	ProcessNumber string     `json:"process_number,omitempty"`
}

// StatusRequest is the payload of a bare status change.
type StatusRequest struct {
	Status CaseStatus `json:"status"`
}

// FinalizeRequest records report delivery and the amount received with it.
type FinalizeRequest struct {
	DeliveryDate   Date    `json:"delivery_date"`
	ReceivedAmount float64 `json:"received_amount"`
}

// PaymentRequest confirms a payment for a delivered case.
type PaymentRequest struct {
	ReceivedAmount float64 `json:"received_amount"`
}

// DivisionsResponse lists configured divisions and the ones used by cases.
type DivisionsResponse struct {
	Configured []string `json:"configured"`
	InUse      []string `json:"in_use"`
}

// CaseUpdate carries the fields a lifecycle operation writes. Nil fields are
// left untouched.
type CaseUpdate struct {
	ID             int64
	Status         *CaseStatus
	DeliveryDate   *Date
	ReceivedAmount *float64
}

// Empty reports whether the update changes nothing.
func (u CaseUpdate) Empty() bool {
	return u.Status == nil && u.DeliveryDate == nil && u.ReceivedAmount == nil
}
