// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const longText = "Microplastic pollution in urban rivers affects freshwater invertebrates in measurable ways."

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeDOCX(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

type fakeConverter struct {
	out string
	err error
}

func (f fakeConverter) Convert(context.Context, string) (string, error) { return f.out, f.err }

func TestDetectFormat(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		want    Format
		wantErr error
	}{
		{"pdf extension", writeFile(t, dir, "a.PDF", "x"), FormatPDF, nil},
		{"docx extension", writeFile(t, dir, "a.docx", "x"), FormatDOCX, nil},
		{"doc extension", writeFile(t, dir, "a.doc", "x"), FormatDOC, nil},
		{"markdown", writeFile(t, dir, "a.md", "x"), FormatText, nil},
		{"sniffed pdf", writeFile(t, dir, "upload", "%PDF-1.7\n..."), FormatPDF, nil},
		{"sniffed text", writeFile(t, dir, "notes", "plain words"), FormatText, nil},
		{"binary", writeFile(t, dir, "blob", "\x00\x01\x02\xff"), "", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_Text(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "paper.txt", "\ufeff  Title  \n\n\n\nBody with   extra spa-\nces.\n")

	r := NewReader(types.DocumentConfig{}, nil)
	text, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Title\n\nBody with extra spaces.", text)
}

func TestRead_DOCX(t *testing.T) {
	dir := t.TempDir()
	path := writeDOCX(t, dir, "paper.docx",
		`<w:p><w:r><w:t>Intro</w:t></w:r><w:r><w:t xml:space="preserve">duction </w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>A</w:t><w:tab/><w:t>B</w:t><w:br/><w:t>C</w:t></w:r></w:p>`)

	r := NewReader(types.DocumentConfig{}, nil)
	text, err := r.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Introduction\n\nA\tB\nC", text)
}

func TestRead_DOCXMissingBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, zip.NewWriter(f).Close())
	require.NoError(t, f.Close())

	_, err = NewReader(types.DocumentConfig{}, nil).Read(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestRead_CorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.pdf", "not really a pdf")

	_, err := NewReader(types.DocumentConfig{}, nil).Read(context.Background(), path)
	assert.Error(t, err)
}

func TestRead_LegacyDoc(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "old.doc", "\xd0\xcf\x11\xe0")

	t.Run("without converter", func(t *testing.T) {
		_, err := NewReader(types.DocumentConfig{}, nil).Read(context.Background(), path)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("with converter", func(t *testing.T) {
		r := NewReader(types.DocumentConfig{}, fakeConverter{out: "# Converted\n\n\n\nText  here"})
		text, err := r.Read(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "# Converted\n\nText here", text)
	})

	t.Run("converter failure", func(t *testing.T) {
		r := NewReader(types.DocumentConfig{}, fakeConverter{err: errors.New("container exited")})
		_, err := r.Read(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "container exited")
	})
}

func TestReadValidated(t *testing.T) {
	dir := t.TempDir()
	r := NewReader(types.DocumentConfig{}, nil)

	text, err := r.ReadValidated(context.Background(), writeFile(t, dir, "long.txt", longText))
	require.NoError(t, err)
	assert.Equal(t, longText, text)

	_, err = r.ReadValidated(context.Background(), writeFile(t, dir, "short.txt", "Too short."))
	assert.ErrorIs(t, err, ErrTooShort)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(longText, 0))
	assert.ErrorIs(t, Validate("   "+strings.Repeat("x", 49)+"   ", 0), ErrTooShort)
	assert.NoError(t, Validate(strings.Repeat("x", 50), 0))
	assert.NoError(t, Validate("short", 5))
	assert.ErrorIs(t, Validate("日本語", 4), ErrTooShort)
}
