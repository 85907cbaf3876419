// Package ingestion extracts plain text from candidate and job-description
// documents, dispatched by file extension: PDF, DOCX, HTML and UTF-8 text.
package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText reads the document at path and returns its plain text.
// Unrecognized extensions are read as UTF-8 text. Every failure is wrapped in
// a single *ExtractionError so callers have one isolation boundary.
func ExtractText(path string) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".html", ".htm":
		text, err = extractHTML(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	}
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: err}
	}
	return text, nil
}

// extractPDF concatenates the plain text of every page.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// extractDOCX returns the editable content of a Word document.
func extractDOCX(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// extractHTML strips markup and returns the visible text of the document
// body, with script and style content removed.
func extractHTML(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, s *goquery.Selection) {
		sb.WriteString(s.Text())
	})
	text := sb.String()
	if text == "" {
		text = doc.Text()
	}
	return CleanText(text), nil
}
