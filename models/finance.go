// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FinancialTotals are the grand totals over every case of a partition.
type FinancialTotals struct {
	Predicted float64 `json:"predicted"`
	Received  float64 `json:"received"`
	Pending   float64 `json:"pending"`
}

// MonthlyTotals are the totals of the cases appointed in one month.
type MonthlyTotals struct {
	// Month is the "YYYY-MM" key.
	Month     string  `json:"month"`
	Predicted float64 `json:"predicted"`
	Received  float64 `json:"received"`
	Pending   float64 `json:"pending"`
}

// StatusCount is one bar of the status histogram.
type StatusCount struct {
	Status CaseStatus `json:"status"`
	Count  int        `json:"count"`
}

// PendingPayment is a case that has not been paid in full.
type PendingPayment struct {
	CaseID            int64      `json:"case_id"`
	ProcessNumber     string     `json:"process_number"`
	Division          string     `json:"division"`
	AppointmentDate   Date       `json:"appointment_date"`
	Status            CaseStatus `json:"status"`
	Predicted         float64    `json:"predicted"`
	Received          float64    `json:"received"`
	Pending           float64    `json:"pending"`
	CompletionPercent float64    `json:"completion_percent"`
}

// FinancialSummary is the read-only financial projection of a partition.
type FinancialSummary struct {
	Totals   FinancialTotals  `json:"totals"`
	Monthly  []MonthlyTotals  `json:"monthly"`
	Statuses []StatusCount    `json:"statuses"`
	Pending  []PendingPayment `json:"pending"`
}
