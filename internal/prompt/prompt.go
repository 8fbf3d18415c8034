// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package prompt composes the instruction prompt sent to the code model.
package prompt

import (
	"strings"
)

// Language is the target language the model is asked to write.
const Language = "Java"

// ArchetypeHeading labels the optional style reference section.
const ArchetypeHeading = "Style reference (archetype code):"

// SystemPrompt is sent as the system instruction to chat-style providers.
// Plain text-generation models only see the prompt from Build.
const SystemPrompt = "You are a senior software engineer who writes production " + Language + " code. " +
	"Respond with source code only."

// Build returns the prompt for the given API description and archetype
// snippets. The description is embedded verbatim. The archetype section is
// rendered only when archetype contains something other than whitespace.
func Build(description, archetype string) string {
	var b strings.Builder

	b.WriteString("\nYou are a senior software engineer. Write complete, compilable ")
	b.WriteString(Language)
	b.WriteString(" classes that implement the following API:\n\n")
	b.WriteString(description)
	b.WriteString("\n\n")

	if strings.TrimSpace(archetype) != "" {
		b.WriteString(ArchetypeHeading)
		b.WriteString("\nFollow the package layout, naming and patterns of this code.\n")
		b.WriteString(archetype)
		b.WriteString("\n\n")
	}

	b.WriteString("Requirements:\n")
	b.WriteString("- Start every file with a package declaration and the imports it needs.\n")
	b.WriteString("- Write one public class per endpoint group, plus request and response classes.\n")
	b.WriteString("- Annotate request mappings, request bodies and response types.\n")
	b.WriteString("- Handle errors explicitly and return meaningful HTTP status codes.\n\n")
	b.WriteString("Return only valid ")
	b.WriteString(Language)
	b.WriteString(" code. Do not include explanations or markdown.\n")

	return b.String()
}
