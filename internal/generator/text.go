// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package generator

import (
	"strings"
)

// PlaceholderClass is the class name of the fallback output.
const PlaceholderClass = "GeneratedAPI"

// StripPrompt removes the first occurrence of prompt from text and trims the
// surrounding whitespace. Text without the prompt is only trimmed.
func StripPrompt(text, prompt string) string {
	if prompt != "" {
		if i := strings.Index(text, prompt); i >= 0 {
			text = text[:i] + text[i+len(prompt):]
		}
	}
	return strings.TrimSpace(text)
}

// Placeholder builds a minimal Java class that records the API description
// and the reason generation failed, so callers still get a usable file. Both
// are embedded verbatim in block comments; a "*/" inside them is written as
// "*\/" so the comment cannot end early.
func Placeholder(description, reason string) string {
	var b strings.Builder
	b.WriteString("public class " + PlaceholderClass + " {\n")
	b.WriteString("    /* API Description:\n")
	b.WriteString(commentText(description))
	if !strings.HasSuffix(description, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("    */\n\n")
	b.WriteString("    // Note: code generation failed, no model output is available.\n")
	b.WriteString("    /* Error: " + commentText(reason) + " */\n\n")
	b.WriteString("    // Implement the API endpoints described above.\n")
	b.WriteString("}\n")
	return b.String()
}

func commentText(s string) string {
	return strings.ReplaceAll(s, "*/", "*\\/")
}
