// Copyright 2026 The Hashira Authors
// SPDX-License-Identifier: MIT

package apidoc

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// wordNS is the WordprocessingML main namespace.
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

	documentPart = "word/document.xml"
)

// ParseWord returns the text of every non-blank body paragraph in a .docx
// file, joined with newlines. Blank and whitespace-only paragraphs are
// dropped rather than turned into empty lines.
func ParseWord(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided spec path
	if err != nil {
		return "", parseErr(path, err, "open document: %v", err)
	}
	defer f.Close() //nolint:errcheck // read-only

	info, err := f.Stat()
	if err != nil {
		return "", parseErr(path, err, "stat document: %v", err)
	}

	text, err := ParseWordReader(f, info.Size())
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Path == "" {
			e.Path = path
		}
		return "", err
	}
	return text, nil
}

// ParseWordReader is ParseWord for an already-open document.
func ParseWordReader(r io.ReaderAt, size int64) (string, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return "", parseErr("", err, "not a Word document: %v", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", parseErr("", nil, "not a Word document: missing %s", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", parseErr("", err, "open %s: %v", documentPart, err)
	}
	defer rc.Close() //nolint:errcheck // read-only

	paras, err := bodyParagraphs(rc)
	if err != nil {
		return "", parseErr("", err, "decode %s: %v", documentPart, err)
	}

	kept := paras[:0]
	for _, p := range paras {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n"), nil
}

// bodyParagraphs streams document.xml and returns the text of each w:p that
// is a direct child of w:body. Paragraphs nested inside a body paragraph
// (text boxes) do not contribute to it.
func bodyParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paras  []string
		stack  []string
		buf    strings.Builder
		inPara bool
		nested int
		inText bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			local := t.Name.Local
			if t.Name.Space != wordNS {
				local = "#" + local
			}
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			stack = append(stack, local)

			switch {
			case local == "p" && parent == "body" && !inPara:
				inPara = true
				buf.Reset()
			case local == "p" && inPara:
				nested++
			case inPara && nested == 0:
				switch local {
				case "t":
					inText = true
				case "tab":
					buf.WriteByte('\t')
				case "br", "cr":
					buf.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced element %s", t.Name.Local)
			}
			local := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch {
			case local == "p" && nested > 0:
				nested--
			case local == "p" && inPara:
				paras = append(paras, buf.String())
				inPara = false
			case local == "t":
				inText = false
			}
		case xml.CharData:
			if inText && nested == 0 {
				buf.Write(t)
			}
		}
	}
	return paras, nil
}
