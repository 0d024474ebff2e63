// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pericias/internal/adapter"
	"github.com/MKhiriev/go-pericias/internal/logger"
	"github.com/MKhiriev/go-pericias/internal/tui"
)

const versionProbeTimeout = 3 * time.Second

var _ Client = (*App)(nil)

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, ErrNotConfigured
	}
	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

// Run starts the UI. An unreachable server is not fatal here: the UI reports
// it on the first request.
func (a *App) Run(ctx context.Context) error {
	err := a.ui.Run(ctx, a.serverVersion(ctx))
	if err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) serverVersion(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()

	version, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server version unavailable")
		return ""
	}

	a.logger.Info().Str("server_version", version).Msg("connected to server")
	return version
}
