// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate - Commitgate is a standalone commit message gate for pull requests.
It validates commit message formatting against style rules and reports results to the console, CI step summaries, and GitHub.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package rules loads the commit style rules applied by the validator.
package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/commitgate/internal/lint"
)

// File is the on-disk YAML shape of a rules file (.commitgate.yaml).
// Pointer fields distinguish "absent, keep the default" from an explicit
// zero value, which Validate then rejects.
type File struct {
	SubjectLimit   *int  `yaml:"subject_limit"`
	BodyLimit      *int  `yaml:"body_limit"`
	CheckBlankLine *bool `yaml:"check_blank_line"`
}

// Load reads a rules file and merges it over the default config.
func Load(path string) (lint.Config, error) {
	cfg := lint.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from a user flag
	if err != nil {
		return cfg, fmt.Errorf("reading rules file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cfg, fmt.Errorf("parsing rules file: %w", err)
	}

	if f.SubjectLimit != nil {
		cfg.SubjectLimit = *f.SubjectLimit
	}
	if f.BodyLimit != nil {
		cfg.BodyLimit = *f.BodyLimit
	}
	if f.CheckBlankLine != nil {
		cfg.CheckBlankLine = *f.CheckBlankLine
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid rules file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects limits that cannot gate anything.
func Validate(cfg lint.Config) error {
	if cfg.SubjectLimit <= 0 {
		return fmt.Errorf("subject_limit must be positive, got %d", cfg.SubjectLimit)
	}
	if cfg.BodyLimit <= 0 {
		return fmt.Errorf("body_limit must be positive, got %d", cfg.BodyLimit)
	}
	return nil
}
