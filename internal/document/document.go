// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document extracts plain text from uploaded papers and grading
// rubrics. PDF, DOCX, and plain-text files are read natively; legacy .doc
// files are converted by the markitdown container when one is configured.
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// DefaultMinChars is the shortest text Validate accepts by default.
const DefaultMinChars = 50

var (
	// ErrUnsupportedType is returned for files no reader handles.
	ErrUnsupportedType = errors.New("unsupported file type: please provide a PDF, DOCX, DOC, or TXT file")

	// ErrTooShort is returned by Validate for texts below the minimum length.
	ErrTooShort = errors.New("extracted text is too short")
)

// Format identifies a supported input format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
	FormatText Format = "text"
)

// Converter turns a document into text. The markitdown container
// implements it for formats without a native reader.
type Converter interface {
	Convert(ctx context.Context, path string) (string, error)
}

// Reader reads documents into cleaned plain text.
type Reader struct {
	cfg types.DocumentConfig
	doc Converter
}

// NewReader creates a Reader. doc may be nil, in which case legacy .doc
// files are rejected with ErrUnsupportedType.
func NewReader(cfg types.DocumentConfig, doc Converter) *Reader {
	if cfg.MinChars <= 0 {
		cfg.MinChars = DefaultMinChars
	}
	return &Reader{cfg: cfg, doc: doc}
}

// DetectFormat classifies path by extension, falling back to sniffing the
// first bytes for files without a known extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".doc":
		return FormatDOC, nil
	case ".txt", ".md", ".markdown", ".text":
		return FormatText, nil
	}

	head := make([]byte, 512)
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	n, _ := f.Read(head)
	head = head[:n]

	switch {
	case strings.HasPrefix(string(head), "%PDF-"):
		return FormatPDF, nil
	case n > 0 && utf8.Valid(head) && !strings.ContainsRune(string(head), 0):
		return FormatText, nil
	}
	return "", fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupportedType)
}

// Read extracts and cleans the text of the document at path.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", err
	}

	var raw string
	switch format {
	case FormatPDF:
		raw, err = readPDF(path)
	case FormatDOCX:
		raw, err = readDOCX(path)
	case FormatText:
		raw, err = readText(path)
	case FormatDOC:
		if r.doc == nil {
			return "", fmt.Errorf("%s: legacy .doc needs the markitdown container (document.use_container): %w",
				filepath.Base(path), ErrUnsupportedType)
		}
		raw, err = r.doc.Convert(ctx, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return CleanText(raw), nil
}

// ReadValidated reads path and rejects texts shorter than the configured
// minimum.
func (r *Reader) ReadValidated(ctx context.Context, path string) (string, error) {
	text, err := r.Read(ctx, path)
	if err != nil {
		return "", err
	}
	if err := Validate(text, r.cfg.MinChars); err != nil {
		return "", fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return text, nil
}

// Validate returns ErrTooShort when the trimmed text has fewer than min
// characters. A non-positive min uses DefaultMinChars.
func Validate(text string, min int) error {
	if min <= 0 {
		min = DefaultMinChars
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(text)); n < min {
		return fmt.Errorf("%w: %d characters, need at least %d", ErrTooShort, n, min)
	}
	return nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
