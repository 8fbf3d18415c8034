// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

// Package webui serves a small browser front end: upload a spec, optionally
// some archetype files, and get the generated classes back as pages and a
// zip download.
package webui

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/teralad/hashira/internal/pipeline"
	"github.com/teralad/hashira/internal/testable"
)

//go:embed templates/*.html
var templateFS embed.FS

// Defaults for Options.
const (
	DefaultAddr          = ":8501"
	DefaultMaxConcurrent = 1
	DefaultMaxUpload     = 32 << 20
	DefaultExt           = ".java"
	shutdownTimeout      = 10 * time.Second
)

// Options tunes the server. Zero values take the defaults.
type Options struct {
	// MaxConcurrent bounds in-flight generations. Extra uploads wait.
	MaxConcurrent int
	// MaxResults bounds how many results stay downloadable.
	MaxResults int
	// MaxUpload bounds the multipart body in bytes.
	MaxUpload int64
	// ArchetypeExt filters uploaded archetype files.
	ArchetypeExt string
	// Models is shown on the form.
	Models []string
	// FS backs scratch directories and result reads.
	FS testable.FileSystem
}

// Server is the web UI. Create it with New and mount Handler.
type Server struct {
	pipe   *pipeline.Pipeline
	opts   Options
	sem    *semaphore.Weighted
	store  *resultStore
	engine *gin.Engine
}

// New builds the router around pipe.
func New(pipe *pipeline.Pipeline, opts Options) *Server {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = DefaultMaxConcurrent
	}
	if opts.MaxUpload <= 0 {
		opts.MaxUpload = DefaultMaxUpload
	}
	if opts.ArchetypeExt == "" {
		opts.ArchetypeExt = DefaultExt
	}
	if opts.FS == nil {
		opts.FS = testable.DefaultFS
	}
	s := &Server{
		pipe:  pipe,
		opts:  opts,
		sem:   semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		store: newResultStore(opts.MaxResults),
	}
	s.engine = s.router()
	return s
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(recovery())
	r.Use(requestLogger())
	r.MaxMultipartMemory = s.opts.MaxUpload
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	r.GET("/", s.handleIndex)
	r.POST("/generate", s.handleGenerate)
	r.GET("/download/:id", s.handleDownload)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		// Generation can take minutes on a cold model.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("web ui listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down web ui")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
