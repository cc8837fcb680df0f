package services

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
)

// buildMinimalPDF assembles a one-page PDF showing the given text, with a
// correct cross-reference table so the reader accepts it.
func buildMinimalPDF(t *testing.T, text string) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 6)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj(1, "1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(2, "2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	writeObj(3, "3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
		"/Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")

	stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	writeObj(4, fmt.Sprintf("4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream))
	writeObj(5, "5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica "+
		"/Encoding /WinAnsiEncoding >>\nendobj\n")

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}

// buildMinimalDOCX zips a word/document.xml containing the given paragraphs.
func buildMinimalDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func TestExtractTextRejectsUnknownFileType(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText(encode([]byte("anything")), "txt")

	require.Error(t, err)
	assert.Equal(t, models.ErrUnsupportedFormat, models.KindOf(err))
}

func TestExtractTextRejectsMalformedBase64(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText("this is !!! not base64 ???", models.FileTypePDF)

	require.Error(t, err)
	assert.Equal(t, models.ErrDecode, models.KindOf(err))
}

func TestExtractTextPDFRoundTrip(t *testing.T) {
	parser := NewDocumentParserService()
	doc := buildMinimalPDF(t, "Hello World")

	text, err := parser.ExtractText(encode(doc), models.FileTypePDF)

	require.NoError(t, err)
	assert.Contains(t, text, "Hello World")
}

func TestExtractTextRejectsGarbagePDF(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText(encode([]byte("not a pdf at all")), models.FileTypePDF)

	require.Error(t, err)
	assert.Equal(t, models.ErrDecode, models.KindOf(err))
}

func TestExtractTextDOCXRoundTrip(t *testing.T) {
	parser := NewDocumentParserService()
	doc := buildMinimalDOCX(t, "Hello World", "", "Second paragraph")

	text, err := parser.ExtractText(encode(doc), models.FileTypeDOCX)

	require.NoError(t, err)
	assert.Contains(t, text, "Hello World")
	assert.Contains(t, text, "Second paragraph")
	// Empty paragraphs are dropped, the rest keep document order
	assert.Equal(t, "Hello World\nSecond paragraph", text)
}

func TestExtractTextRejectsDOCXWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entry, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	parser := NewDocumentParserService()
	_, err = parser.ExtractText(encode(buf.Bytes()), models.FileTypeDOCX)

	require.Error(t, err)
	assert.Equal(t, models.ErrDecode, models.KindOf(err))
}

func TestExtractTextRejectsEmptyDOCX(t *testing.T) {
	parser := NewDocumentParserService()
	doc := buildMinimalDOCX(t, "", "   ")

	_, err := parser.ExtractText(encode(doc), models.FileTypeDOCX)

	require.Error(t, err)
	assert.Equal(t, models.ErrDecode, models.KindOf(err))
}

func TestExtractTextRejectsGarbageDOCX(t *testing.T) {
	parser := NewDocumentParserService()

	_, err := parser.ExtractText(encode([]byte("definitely not a zip")), models.FileTypeDOCX)

	require.Error(t, err)
	assert.Equal(t, models.ErrDecode, models.KindOf(err))
}

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  hello  \n\n  world  ", "hello\nworld"},
		{"single", "single"},
		{"\n\n\n", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, CleanText(tc.input))
	}
}
