package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrUnreadablePDF marks byte streams that are not a valid PDF.
	ErrUnreadablePDF = errors.New("failed to read PDF")
	// ErrNoTextContent marks PDFs from which no text could be decoded
	// (scanned images, empty documents).
	ErrNoTextContent = errors.New("no text content found in PDF")
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
	ExtractTextFromFile(filePath string) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText extracts plain text from raw PDF bytes: every page in page
// order, concatenated.
func (p *pdfParserService) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages but keep the rest
			continue
		}

		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoTextContent
	}

	return text, nil
}

// ExtractTextFromFile extracts plain text from a PDF stored on disk.
func (p *pdfParserService) ExtractTextFromFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return p.ExtractText(data)
}
