// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envFileVariable names the variable holding an alternative .env path.
const envFileVariable = "ENV_FILE"

// loadDotEnv exports the variables of the .env file (or ENV_FILE) into the
// process environment. Variables already set are left untouched and a
// missing file is not an error.
func loadDotEnv() error {
	path := os.Getenv(envFileVariable)
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}

	return nil
}

// parseEnv populates cfg from environment variables via its env tags.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
