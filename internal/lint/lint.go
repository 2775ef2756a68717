// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Commitgate - Commitgate is a standalone commit message gate for pull requests.
It validates commit message formatting against style rules and reports results to the console, CI step summaries, and GitHub.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package lint implements the commit message validator.
//
// Validate is a pure function: same message and config always produce the
// same ordered finding list, and malformed input yields findings rather
// than errors.
package lint

import (
	"strings"
	"unicode/utf8"
)

// Config holds the style rules applied to a commit message.
type Config struct {
	// SubjectLimit is the maximum subject length in characters,
	// measured on the untrimmed subject line.
	SubjectLimit int

	// BodyLimit is the maximum body line length in characters,
	// measured on each trimmed body line.
	BodyLimit int

	// CheckBlankLine enables the blank-line separation rules between
	// subject and body, and between body and the Signed-off-by trailer.
	CheckBlankLine bool
}

// DefaultConfig returns the stock rule set: 50-character subjects,
// 72-character body lines, blank-line checks on.
func DefaultConfig() Config {
	return Config{SubjectLimit: 50, BodyLimit: 72, CheckBlankLine: true}
}

// Validate checks one commit message against cfg and returns the findings
// in a fixed order: missing subject, subject too long, subject/body
// separator, body/signoff separator, missing body, then one finding per
// over-long body line in body order. An empty list means the commit passes.
func Validate(message string, cfg Config) []Finding {
	lines := splitLines(message)
	n := len(lines)

	subject := ""
	if n >= 1 {
		subject = lines[0]
	}

	body := bodyLines(lines, 1)

	signedOff := ""
	if n >= 1 && isSignoff(lines[n-1]) {
		signedOff = lines[n-1]
	}

	missingSubjectBodySep := false
	missingBodySignoffSep := false
	if cfg.CheckBlankLine {
		if n > 1 && strings.TrimSpace(lines[1]) != "" {
			missingSubjectBodySep = true
		} else {
			// Line 1 is the blank separator (or absent); the body
			// starts at line 2.
			body = bodyLines(lines, 2)
		}
		if signedOff != "" && n >= 2 && strings.TrimSpace(lines[n-2]) != "" {
			missingBodySignoffSep = true
		}
	}

	var findings []Finding

	if strings.TrimSpace(subject) == "" {
		findings = append(findings, Finding{Kind: KindMissingSubject})
	}
	if utf8.RuneCountInString(subject) > cfg.SubjectLimit {
		findings = append(findings, Finding{Kind: KindSubjectTooLong, Limit: cfg.SubjectLimit})
	}

	if cfg.CheckBlankLine {
		if missingSubjectBodySep && subject != "" && len(body) > 0 {
			findings = append(findings, Finding{Kind: KindMissingSeparator, Separator: SeparatorSubjectBody})
		}
		if missingBodySignoffSep && len(body) > 0 && signedOff != "" {
			findings = append(findings, Finding{Kind: KindMissingSeparator, Separator: SeparatorBodySignoff})
		}
	}

	if len(body) == 0 {
		findings = append(findings, Finding{Kind: KindMissingBody})
	}
	for _, line := range body {
		if utf8.RuneCountInString(line) > cfg.BodyLimit {
			findings = append(findings, Finding{Kind: KindLineTooLong, Limit: cfg.BodyLimit, Line: line})
		}
	}

	return findings
}

// splitLines splits a message into lines. An empty message has no lines,
// and a trailing line terminator does not produce a trailing empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// bodyLines collects trimmed, non-blank lines from index start onward,
// excluding Signed-off-by lines. The prefix check runs on the untrimmed
// lowercased line; the kept line is trimmed.
func bodyLines(lines []string, start int) []string {
	if start >= len(lines) {
		return nil
	}
	var body []string
	for _, line := range lines[start:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "signed-off-by") {
			continue
		}
		body = append(body, strings.TrimSpace(line))
	}
	return body
}

func isSignoff(line string) bool {
	return strings.Contains(strings.ToLower(line), "signed-off-by")
}
