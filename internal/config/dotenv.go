// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv copies KEY=VALUE pairs from the given files (".env" when none
// are given) into the process environment. Variables that are already set
// are left alone, and missing files are skipped.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{defaultDotEnvFile}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error reading env file %s: %w", f, err)
		}
		existing = append(existing, f)
	}

	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("error loading env files: %w", err)
	}
	return nil
}
