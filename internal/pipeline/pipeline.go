// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package pipeline runs one end-to-end generation: parse the spec, load the
// archetype, generate, fall back to a placeholder, then split and write.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/teralad/hashira/internal/apidoc"
	"github.com/teralad/hashira/internal/archetype"
	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/redact"
	"github.com/teralad/hashira/internal/splitter"
	"github.com/teralad/hashira/internal/testable"
)

// Generator produces code for a request. *generator.Client implements it.
type Generator interface {
	Generate(ctx context.Context, req generator.Request) generator.Result
}

// Input describes one run.
type Input struct {
	// SpecPath is the OpenAPI or Word document to read.
	SpecPath string

	// OutputDir receives one file per class. Empty skips split and write.
	OutputDir string

	// ArchetypeSource is a directory, file or git URL. Ignored when
	// Archetype is set.
	ArchetypeSource string

	// Archetype is a ready snippet set, e.g. built from uploaded files.
	Archetype string

	// Strict validates OpenAPI documents before parsing.
	Strict bool
}

// Result carries every intermediate artifact of a run so that callers can
// still show the generated code when writing fails.
type Result struct {
	Format      apidoc.Format
	Description string
	Prompt      string
	Generated   string
	Model       string

	// Placeholder is set when the model failed and Generated is the
	// fallback class. GenErr holds the failure.
	Placeholder bool
	GenErr      error

	Split    splitter.Result
	Files    []string
	WriteErr error

	Duration time.Duration
}

// Pipeline wires the stages together. It is safe for concurrent use if its
// Generator is.
type Pipeline struct {
	gen    Generator
	loader *archetype.Loader
	fs     testable.FileSystem
	ext    string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLoader sets the archetype loader.
func WithLoader(l *archetype.Loader) Option {
	return func(p *Pipeline) { p.loader = l }
}

// WithFileSystem sets the file system used for output.
func WithFileSystem(fsys testable.FileSystem) Option {
	return func(p *Pipeline) { p.fs = fsys }
}

// WithExtension sets the output file extension.
func WithExtension(ext string) Option {
	return func(p *Pipeline) { p.ext = ext }
}

// New returns a Pipeline that generates with gen.
func New(gen Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:    gen,
		loader: archetype.NewLoader(""),
		fs:     testable.DefaultFS,
		ext:    splitter.DefaultExt,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes all stages. Format, parse and archetype errors abort the run
// and return a nil Result. A model failure is not an error: the Result
// carries a placeholder instead. A write failure returns the filled Result
// together with an error wrapping splitter.ErrWrite.
func (p *Pipeline) Run(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()

	format, err := apidoc.DetectFormat(in.SpecPath)
	if err != nil {
		return nil, err
	}
	if in.Strict && format.IsOpenAPI() {
		if err := apidoc.Validate(ctx, in.SpecPath); err != nil {
			return nil, err
		}
	}
	desc, err := apidoc.Parse(in.SpecPath)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "parsed spec", "path", in.SpecPath, "format", format.String(),
		"lines", strings.Count(desc, "\n"))

	arch := in.Archetype
	if arch == "" && in.ArchetypeSource != "" {
		arch, err = p.loader.Load(ctx, in.ArchetypeSource)
		if err != nil {
			return nil, err
		}
	}

	res := p.Generate(ctx, desc, arch)
	res.Format = format

	if in.OutputDir != "" {
		if err := p.Write(res, in.OutputDir); err != nil {
			res.Duration = time.Since(start)
			return res, err
		}
	}

	res.Duration = time.Since(start)
	return res, nil
}

// Generate runs the model on an already parsed description. On failure the
// Result holds a placeholder class naming the reason.
func (p *Pipeline) Generate(ctx context.Context, description, arch string) *Result {
	gr := p.gen.Generate(ctx, generator.Request{Description: description, Archetype: arch})
	res := &Result{
		Description: description,
		Prompt:      gr.Prompt,
		Model:       gr.Model,
	}
	if gr.OK() {
		res.Generated = gr.Text
		return res
	}

	reason := redact.Error(gr.Err)
	var ge *generator.Error
	if errors.As(gr.Err, &ge) {
		reason = redact.String(ge.Reason)
	}
	slog.WarnContext(ctx, "generation failed, using placeholder", "error", gr.Err)
	res.Generated = generator.Placeholder(description, reason)
	res.Placeholder = true
	res.GenErr = gr.Err
	return res
}

// Write splits res.Generated and writes the units to dir, recording the
// outcome in res. The returned error wraps splitter.ErrWrite.
func (p *Pipeline) Write(res *Result, dir string) error {
	res.Split = splitter.Split(res.Generated)
	files, err := splitter.Write(p.fs, dir, res.Split.Units, p.ext)
	res.Files = files
	if err != nil {
		res.WriteErr = err
		return fmt.Errorf("pipeline: %w", err)
	}
	slog.Info("wrote files", "dir", dir, "files", len(files), "residue_lines", res.Split.Residue)
	return nil
}
