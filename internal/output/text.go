// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/teralad/hashira/internal/generator"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes a short colored summary for terminals. Colors follow
// color.NoColor.
type TextFormatter struct{}

// Compile-time interface check.
var _ Formatter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (t *TextFormatter) Name() string {
	return "text"
}

// Format writes the summary to w.
func (t *TextFormatter) Format(r Report, w io.Writer) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	p := &errWriter{w: w}
	p.println()
	if r.Placeholder {
		p.do(yellow.Fprintf(w, "Model unavailable, wrote placeholder %s\n", generator.PlaceholderClass))
		p.do(dim.Fprintf(w, "  %s\n", r.Reason))
	} else {
		p.do(bold.Fprintf(w, "Generated code with %s\n", r.Model))
	}
	if r.Fallback {
		p.do(yellow.Fprintln(w, `No public class declarations found; split on "class " instead`))
	}

	for _, f := range r.Files {
		p.do(fmt.Fprintf(w, "%s%s\n", green.Sprint("  + "), f))
	}
	if len(r.Files) == 0 {
		p.do(yellow.Fprintln(w, "No classes found in the generated text; nothing written"))
	}
	if r.Residue > 0 {
		p.do(dim.Fprintf(w, "  (%d lines outside any class were dropped)\n", r.Residue))
	}
	if r.Zip != "" {
		p.do(fmt.Fprintf(w, "%s%s\n", green.Sprint("  + "), r.Zip))
	}
	p.do(dim.Fprintf(w, "Done in %s\n", r.Duration.Round(time.Millisecond)))
	p.println()
	return p.err
}

// errWriter keeps the first write error so a formatter can check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) do(_ int, err error) {
	if e.err == nil && err != nil {
		e.err = fmt.Errorf("write text: %w", err)
	}
}

func (e *errWriter) println() {
	e.do(fmt.Fprintln(e.w))
}
