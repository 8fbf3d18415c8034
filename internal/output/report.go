// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package output

import (
	"errors"
	"time"

	"github.com/teralad/hashira/internal/generator"
	"github.com/teralad/hashira/internal/pipeline"
	"github.com/teralad/hashira/internal/redact"
)

// Report summarises one generate run.
type Report struct {
	Spec        string        `json:"spec"`
	Format      string        `json:"format"`
	Model       string        `json:"model,omitempty"`
	Placeholder bool          `json:"placeholder"`
	Reason      string        `json:"reason,omitempty"`
	Fallback    bool          `json:"fallback_split"`
	Residue     int           `json:"residue_lines"`
	Files       []string      `json:"files"`
	Zip         string        `json:"zip,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// FromResult builds a Report. Files written more than once are listed once.
// The failure reason is redacted.
func FromResult(spec string, res *pipeline.Result) Report {
	r := Report{
		Spec:        spec,
		Format:      res.Format.String(),
		Model:       res.Model,
		Placeholder: res.Placeholder,
		Fallback:    res.Split.Fallback,
		Residue:     res.Split.Residue,
		Files:       []string{},
		Duration:    res.Duration,
	}
	if res.GenErr != nil {
		r.Reason = redact.Error(res.GenErr)
		var ge *generator.Error
		if errors.As(res.GenErr, &ge) {
			r.Reason = redact.String(ge.Reason)
		}
	}

	seen := make(map[string]bool, len(res.Files))
	for _, f := range res.Files {
		if !seen[f] {
			seen[f] = true
			r.Files = append(r.Files, f)
		}
	}
	return r
}
