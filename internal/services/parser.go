package services

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/GVKarthik-dev/MCP-PuchAI-Hackathon/internal/models"
)

// DocumentParserService turns a base64-encoded document payload into plain
// text. Everything happens in memory; nothing is written to disk.
type DocumentParserService interface {
	ExtractText(docBase64, fileType string) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

func (s *documentParserService) ExtractText(docBase64, fileType string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(docBase64)
	if err != nil {
		return "", models.SkillErrorf(models.ErrDecode, "failed to decode base64 document: %v", err)
	}

	switch fileType {
	case models.FileTypePDF:
		return s.extractPDF(data)
	case models.FileTypeDOCX:
		return s.extractDOCX(data)
	default:
		return "", models.SkillErrorf(models.ErrUnsupportedFormat, "unsupported file type %q (supported: pdf, docx)", fileType)
	}
}

func (s *documentParserService) extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = models.SkillErrorf(models.ErrDecode, "failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", models.SkillErrorf(models.ErrDecode, "failed to open PDF: %v", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(content)
		textBuilder.WriteString("\n\n")
	}

	text = CleanText(textBuilder.String())
	if text == "" {
		return "", models.SkillErrorf(models.ErrDecode, "no text content found in PDF")
	}

	return text, nil
}

func (s *documentParserService) extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", models.SkillErrorf(models.ErrDecode, "failed to open DOCX archive: %v", err)
	}

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", models.SkillErrorf(models.ErrDecode, "not a DOCX document: word/document.xml missing")
	}

	rc, err := document.Open()
	if err != nil {
		return "", models.SkillErrorf(models.ErrDecode, "failed to read DOCX document: %v", err)
	}
	defer rc.Close()

	text, err := collectParagraphs(rc)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", models.SkillErrorf(models.ErrDecode, "no text content found in DOCX")
	}

	return text, nil
}

// collectParagraphs streams word/document.xml and gathers the text runs
// (w:t elements), one output line per non-empty paragraph (w:p).
func collectParagraphs(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var paragraph strings.Builder
	inRun := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", models.SkillErrorf(models.ErrDecode, "failed to parse DOCX document: %v", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inRun = false
			case "p":
				if line := strings.TrimSpace(paragraph.String()); line != "" {
					paragraphs = append(paragraphs, line)
				}
				paragraph.Reset()
			}
		case xml.CharData:
			if inRun {
				paragraph.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}

// CleanText normalizes extracted text: trims lines and drops empty ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
