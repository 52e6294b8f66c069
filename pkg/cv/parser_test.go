package cv

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><w:document><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a single-page PDF showing line in Helvetica.
func buildPDF(t *testing.T, line string) []byte {
	t.Helper()
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", line)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestParseDocumentText_PDF(t *testing.T) {
	data := buildPDF(t, "Go and SQL engineer")

	text, err := ParseDocumentText("resume.pdf", data)
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL engineer", text)

	path := filepath.Join(t.TempDir(), "cv-upload")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	text, err = FileExtractor{}.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Go and SQL engineer", text)
}

func TestParseDocumentText_Docx(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>SQL,&#160;Go</w:t></w:r></w:p><w:p><w:r><w:t>Five years</w:t></w:r></w:p>`)
	text, err := ParseDocumentText("resume.DOCX", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Skills:")
	assert.Contains(t, text, "SQL")
	assert.Contains(t, text, "Five years")
}

func TestParseDocumentText_EmptyDocx(t *testing.T) {
	_, err := ParseDocumentText("resume.docx", buildDocx(t, `<w:p></w:p>`))
	assert.ErrorIs(t, err, errEmptyDocument)
}

func TestParseDocumentText_MalformedPDF(t *testing.T) {
	_, err := ParseDocumentText("resume.pdf", []byte("not a pdf at all"))
	assert.Error(t, err)

	_, err = ParseDocumentText("upload", nil)
	assert.Error(t, err)
}

func TestFileExtractor_MissingFile(t *testing.T) {
	_, err := FileExtractor{}.ExtractText(filepath.Join(t.TempDir(), "gone.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b\nc", normalizeWhitespace("  a  \t b\n\n\nc  "))
}
