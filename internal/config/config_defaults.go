// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied to every field still zero after all sources merged.
const (
	DefaultTokenIssuer    = "go-pericias"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultAdminEmail     = "admin@pericias.com"
	DefaultAdminPassword  = "admin_password"
	DefaultAdminName      = "Admin Master"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultPartitionsDir  = "data/partitions"
	DefaultIdleTimeout    = 10 * time.Minute
	DefaultReportsDir     = "data/reports"
	DefaultReaperInterval = time.Minute
	DefaultVersion        = "dev"
)

// DefaultDivisions are the court divisions of the reference deployment.
var DefaultDivisions = []string{"1VF", "2VF", "3VF"}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
			Version:          DefaultVersion,
			LogLevel:         "debug",
			Divisions:        append([]string(nil), DefaultDivisions...),
			AdminEmail:       DefaultAdminEmail,
			AdminPassword:    DefaultAdminPassword,
			AdminName:        DefaultAdminName,
		},
		Storage: Storage{
			Partitions: Partitions{
				Dir:         DefaultPartitionsDir,
				IdleTimeout: DefaultIdleTimeout,
			},
			Reports: Reports{
				Backend: ReportsBackendFile,
				Dir:     DefaultReportsDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			ReaperInterval: DefaultReaperInterval,
		},
	}
}
