// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package webui

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teralad/hashira/internal/apidoc"
	"github.com/teralad/hashira/internal/archetype"
	"github.com/teralad/hashira/internal/bundle"
	"github.com/teralad/hashira/internal/pipeline"
	"github.com/teralad/hashira/internal/redact"
	"github.com/teralad/hashira/internal/scratch"
)

// ZipName is the file name offered for downloads.
const ZipName = "generated_code.zip"

type generateResponse struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Generated   string     `json:"generated"`
	Model       string     `json:"model,omitempty"`
	Placeholder bool       `json:"placeholder"`
	Fallback    bool       `json:"fallback"`
	Residue     int        `json:"residue_lines"`
	Files       []fileView `json:"files"`
	WriteError  string     `json:"write_error,omitempty"`
	Download    string     `json:"download,omitempty"`
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.indexData(""))
}

func (s *Server) indexData(errMsg string) gin.H {
	return gin.H{
		"Error":        errMsg,
		"ArchetypeExt": s.opts.ArchetypeExt,
		"Models":       s.opts.Models,
	}
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	if wantsJSON(c) {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.HTML(status, "index.html", s.indexData(msg))
}

func (s *Server) handleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	spec, err := c.FormFile("spec")
	if err != nil {
		s.fail(c, http.StatusBadRequest, "missing spec file")
		return
	}
	specName := filepath.Base(spec.Filename)
	if _, err := apidoc.DetectFormat(specName); err != nil {
		s.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	var arch string
	if useArchetype(c.PostForm("use_archetype")) {
		arch, err = s.readArchetype(c)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.fail(c, http.StatusServiceUnavailable, "request cancelled while waiting for the model")
		return
	}
	defer s.sem.Release(1)

	dir, err := scratch.New(s.opts.FS, "hashira-web")
	if err != nil {
		slog.ErrorContext(ctx, "scratch dir", "error", err)
		s.fail(c, http.StatusInternalServerError, "could not create working directory")
		return
	}
	defer func() { _ = dir.Close() }()

	specPath := filepath.Join(dir.Path, specName)
	if err := c.SaveUploadedFile(spec, specPath); err != nil {
		slog.ErrorContext(ctx, "save upload", "error", err)
		s.fail(c, http.StatusInternalServerError, "could not store upload")
		return
	}

	outDir := filepath.Join(dir.Path, "out")
	res, err := s.pipe.Run(ctx, pipeline.Input{SpecPath: specPath, OutputDir: outDir, Archetype: arch})
	if res == nil {
		s.fail(c, http.StatusBadRequest, redact.Error(err))
		return
	}

	e, err := s.collect(dir.ID, specName, outDir, res)
	if err != nil {
		slog.ErrorContext(ctx, "bundle results", "error", err)
		s.fail(c, http.StatusInternalServerError, "could not package generated files")
		return
	}
	s.store.put(e)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, e.response())
		return
	}
	c.HTML(http.StatusOK, "result.html", e)
}

// readArchetype concatenates the uploaded archetype files in upload order.
func (s *Server) readArchetype(c *gin.Context) (string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return "", fmt.Errorf("read form: %w", err)
	}
	var files []archetype.File
	for _, fh := range form.File["archetype"] {
		name := filepath.Base(fh.Filename)
		if !strings.EqualFold(filepath.Ext(name), s.opts.ArchetypeExt) {
			slog.Warn("skipping archetype upload", "name", name, "want_ext", s.opts.ArchetypeExt)
			continue
		}
		content, err := readUpload(fh)
		if err != nil {
			return "", fmt.Errorf("read archetype %s: %w", name, err)
		}
		files = append(files, archetype.File{Name: name, Content: string(content)})
	}
	return archetype.FromFiles(files), nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// collect copies what the page and the download need out of the scratch
// directory before it is removed.
func (s *Server) collect(id, specName, outDir string, res *pipeline.Result) (*entry, error) {
	e := &entry{
		ID:          id,
		SpecName:    specName,
		Description: res.Description,
		Generated:   res.Generated,
		Model:       res.Model,
		Placeholder: res.Placeholder,
		Residue:     res.Split.Residue,
		Fallback:    res.Split.Fallback,
	}

	var files []bundle.File
	if res.WriteErr != nil {
		e.WriteError = redact.Error(res.WriteErr)
		for _, u := range res.Split.Units {
			files = append(files, bundle.File{Name: u.Name + DefaultExt, Content: []byte(u.Source)})
		}
	} else if len(res.Files) > 0 {
		read, err := bundle.ReadDir(s.opts.FS, outDir, "")
		if err != nil {
			return nil, err
		}
		files = read
	}

	for _, f := range files {
		e.Files = append(e.Files, fileView{Name: f.Name, Content: string(f.Content)})
	}
	if len(files) > 0 {
		var buf bytes.Buffer
		if err := bundle.Zip(&buf, files); err != nil {
			return nil, err
		}
		e.Zip = buf.Bytes()
	}
	return e, nil
}

func (e *entry) response() generateResponse {
	r := generateResponse{
		ID:          e.ID,
		Description: e.Description,
		Generated:   e.Generated,
		Model:       e.Model,
		Placeholder: e.Placeholder,
		Fallback:    e.Fallback,
		Residue:     e.Residue,
		Files:       e.Files,
		WriteError:  e.WriteError,
	}
	if r.Files == nil {
		r.Files = []fileView{}
	}
	if len(e.Zip) > 0 {
		r.Download = "/download/" + e.ID
	}
	return r
}

func (s *Server) handleDownload(c *gin.Context) {
	e, ok := s.store.get(c.Param("id"))
	if !ok || len(e.Zip) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+ZipName+`"`)
	c.Data(http.StatusOK, "application/zip", e.Zip)
}

func useArchetype(v string) bool {
	if v == "" {
		return false
	}
	if v == "on" {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
