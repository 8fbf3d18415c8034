// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

func init() {
	RegisterFormatter(NewMarkdownFormatter())
}

// MarkdownFormatter writes the report as a Markdown summary, e.g. for a
// pull request description.
type MarkdownFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*MarkdownFormatter)(nil)

// NewMarkdownFormatter returns a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Name returns the format name.
func (m *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format writes r to w.
func (m *MarkdownFormatter) Format(r Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Generated code for %s\n\n", filepath.Base(r.Spec))
	fmt.Fprintf(&b, "**Format:** %s | **Files:** %d | **Duration:** %s\n\n",
		r.Format, len(r.Files), r.Duration.Round(time.Millisecond))

	if r.Placeholder {
		b.WriteString("> **Warning:** the model could not generate code; a placeholder class was written.\n")
		if r.Reason != "" {
			fmt.Fprintf(&b, ">\n> Reason: %s\n", escapeMarkdownLine(r.Reason))
		}
		b.WriteString("\n")
	} else if r.Model != "" {
		fmt.Fprintf(&b, "Model: `%s`\n\n", r.Model)
	}
	if r.Fallback {
		b.WriteString("> **Note:** no public class declarations were found; output was split on `class `.\n\n")
	}

	if len(r.Files) > 0 {
		b.WriteString("| File | Class |\n")
		b.WriteString("|------|-------|\n")
		for _, f := range r.Files {
			name := filepath.Base(f)
			fmt.Fprintf(&b, "| %s | %s |\n", f, strings.TrimSuffix(name, filepath.Ext(name)))
		}
		b.WriteString("\n")
	} else {
		b.WriteString("No classes were written.\n\n")
	}
	if r.Residue > 0 {
		fmt.Fprintf(&b, "%d lines outside any class were dropped.\n\n", r.Residue)
	}
	if r.Zip != "" {
		fmt.Fprintf(&b, "Archive: `%s`\n", r.Zip)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func escapeMarkdownLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
