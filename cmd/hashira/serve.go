// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/teralad/hashira/internal/config"
	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/webui"
)

var (
	serveAddr          string
	serveMaxConcurrent int
)

// serveCmd runs the web UI.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	Long: `Serve a browser front end for uploading a specification and optional
archetype files. Generated classes are shown per file and can be downloaded
as a zip archive.

Generations run one at a time by default; further uploads wait for a slot.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultWebAddr+")")
	serveCmd.Flags().IntVar(&serveMaxConcurrent, "max-concurrent", 0, "generations allowed at once")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&config.Config{
		Web: config.WebConfig{Addr: serveAddr, MaxConcurrent: serveMaxConcurrent},
	})
	if err != nil {
		return err
	}
	pipe, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := webui.New(pipe, webui.Options{
		MaxConcurrent: cfg.WebMaxConcurrent(),
		ArchetypeExt:  cfg.ArchetypeExtension(),
		Models:        modelNames(cfg),
		FS:            cmdFS,
	})
	return srv.ListenAndServe(cmd.Context(), cfg.WebAddr())
}

// modelNames lists the candidate chain as configured, or the defaults.
func modelNames(cfg *config.Config) []string {
	if len(cfg.Models) > 0 {
		return cfg.Models
	}
	var names []string
	for _, c := range generator.DefaultCandidates() {
		names = append(names, c.String())
	}
	return names
}
