// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate - Commitgate is a standalone commit message gate for pull requests.
It validates commit message formatting against style rules and reports results to the console, CI step summaries, and GitHub.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package history defines the boundary between commit sources and the checker.
package history

import "context"

// Commit is a single commit as the validator sees it: an opaque SHA and
// the raw message text. Message content is never parsed as a git object;
// it arrives pre-extracted from whichever source produced it.
type Commit struct {
	SHA     string
	Message string
}

// Source provides ordered commit history for validation.
type Source interface {
	Commits(ctx context.Context) ([]Commit, error)
}
