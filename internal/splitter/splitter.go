// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package splitter cuts generated Java text into one unit per top-level type
// and writes each unit to its own file.
package splitter

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// Unit is one type declaration recovered from generated text.
type Unit struct {
	Name   string
	Source string
}

// Result is the outcome of Split.
type Result struct {
	Units []Unit

	// Residue counts non-blank input lines not covered by any unit.
	Residue int

	// Fallback is set when no public declaration was found and the text was
	// split on the literal "class " instead.
	Fallback bool
}

var (
	declRe  = regexp.MustCompile(`\bpublic\s+(?:(?:abstract|final|static|sealed|non-sealed|strictfp)\s+)*(?:class|interface|enum|record)\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

const fallbackToken = "class "

type span struct{ start, end int }

// Split extracts units from text. Public class, interface, enum and record
// declarations are taken through the brace that closes their body. Braces
// inside string literals and comments are counted like any other. When no
// declaration closes, the text is split on "class " instead; that path is
// lossy and logged. Split is deterministic.
func Split(text string) Result {
	units, spans := splitDeclarations(text)
	if len(units) > 0 {
		return Result{Units: units, Residue: residue(text, spans)}
	}

	units, spans = splitOnClassToken(text)
	res := Result{Units: units, Residue: residue(text, spans), Fallback: true}
	if strings.TrimSpace(text) != "" {
		slog.Warn("no public type declarations found, split on \"class \" instead",
			"units", len(res.Units), "residue_lines", res.Residue)
	}
	return res
}

func splitDeclarations(text string) ([]Unit, []span) {
	var (
		units []Unit
		spans []span
	)
	pos := 0
	for pos < len(text) {
		loc := declRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start, headerEnd := pos+loc[0], pos+loc[1]
		name := text[pos+loc[2] : pos+loc[3]]

		end := closingBrace(text, headerEnd)
		if end < 0 {
			pos = headerEnd
			continue
		}
		units = append(units, Unit{Name: name, Source: text[start : end+1]})
		spans = append(spans, span{start, end + 1})
		pos = end + 1
	}
	return units, spans
}

// closingBrace returns the index of the brace that balances the first '{'
// at or after from, or -1.
func closingBrace(text string, from int) int {
	open := strings.IndexByte(text[from:], '{')
	if open < 0 {
		return -1
	}
	depth := 0
	for i := from + open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func splitOnClassToken(text string) ([]Unit, []span) {
	var (
		units []Unit
		spans []span
	)
	parts := strings.Split(text, fallbackToken)
	offset := len(parts[0])
	for _, part := range parts[1:] {
		start := offset
		offset += len(fallbackToken) + len(part)

		name := fallbackName(part)
		if !identRe.MatchString(name) {
			continue
		}
		units = append(units, Unit{Name: name, Source: fallbackToken + part})
		spans = append(spans, span{start, offset})
	}
	return units, spans
}

// fallbackName is the first token of the part's first line, delimited by
// whitespace or "{".
func fallbackName(part string) string {
	line, _, _ := strings.Cut(part, "\n")
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '{'
	})
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// residue counts the non-blank lines of text outside spans. spans are sorted
// and disjoint.
func residue(text string, spans []span) int {
	n, pos := 0, 0
	for _, s := range spans {
		n += nonBlankLines(text[pos:s.start])
		pos = s.end
	}
	return n + nonBlankLines(text[pos:])
}

func nonBlankLines(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
