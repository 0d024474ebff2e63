// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-pericias/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	urgentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4D"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	normalStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3CB371"))
)

// tierStyle colors a case row by its deadline tier. Cases without a computed
// deadline are not colored.
func tierStyle(d *models.Deadline) lipgloss.Style {
	if d == nil {
		return lipgloss.NewStyle()
	}
	switch d.Tier {
	case models.TierUrgent:
		return urgentStyle
	case models.TierWarning:
		return warningStyle
	default:
		return normalStyle
	}
}
