// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deadline computes the legal deadline of a case and its urgency
// tier. Every function is pure; the current day is always passed in or
// obtained from an injected [Clock].
package deadline

import (
	"time"

	"github.com/MKhiriev/go-pericias/models"
)

// WarningDays is the largest number of remaining days still tiered as a warning.
const WarningDays = 7

// Remaining returns the number of whole days left until the deadline and the
// deadline date itself. The deadline is appointment + days calendar days; the
// result is negative when the deadline has passed.
func Remaining(appointment models.Date, days int, today models.Date) (int, models.Date) {
	due := appointment.AddDays(days)
	return today.DaysUntil(due), due
}

// TierOf classifies remaining days: overdue is urgent, up to [WarningDays] is
// a warning, anything later is normal.
func TierOf(remaining int) models.DeadlineTier {
	switch {
	case remaining < 0:
		return models.TierUrgent
	case remaining <= WarningDays:
		return models.TierWarning
	default:
		return models.TierNormal
	}
}

// Compute returns the full [models.Deadline] of a case as of today.
func Compute(appointment models.Date, days int, today models.Date) models.Deadline {
	remaining, due := Remaining(appointment, days, today)
	return models.Deadline{
		Date:          due,
		RemainingDays: remaining,
		Tier:          TierOf(remaining),
	}
}

// Clock yields the current day in a fixed location.
type Clock struct {
	now      func() time.Time
	location *time.Location
}

// NewClock returns a Clock reading the system time in loc.
// A nil loc means time.Local.
func NewClock(loc *time.Location) Clock {
	return NewClockFunc(time.Now, loc)
}

// NewClockFunc returns a Clock backed by now. Tests use it to pin "today".
func NewClockFunc(now func() time.Time, loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{now: now, location: loc}
}

// Today returns the current calendar day.
func (c Clock) Today() models.Date {
	now := c.now
	if now == nil {
		now = time.Now
	}
	loc := c.location
	if loc == nil {
		loc = time.Local
	}
	return models.DateOf(now().In(loc))
}

// Decorate sets the derived deadline on every case.
func (c Clock) Decorate(cases ...*models.Case) {
	today := c.Today()
	for _, cs := range cases {
		d := Compute(cs.AppointmentDate, cs.DeadlineDays, today)
		cs.Deadline = &d
	}
}
