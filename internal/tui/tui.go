// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation layer of the pericias client.
//
// A single bubbletea model owns a [viewState] value describing the current
// screen, the open modal, the selected row, the case filter and the session.
// All server access goes through [adapter.ServerAdapter].
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pericias/internal/adapter"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/models"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: logger}
}

// Run blocks until the user quits. serverVersion is shown on the welcome
// screen when not empty.
func (t *TUI) Run(ctx context.Context, serverVersion string) error {
	model := newAppModel(ctx, t.adapter, t.buildInfo, serverVersion, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
