// Package pdftext extracts the plain text of an uploaded deed PDF. It is the
// first collaborator in the pipeline; the formatting core never touches the
// PDF itself.
package pdftext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/username/modelia/backend/src/logger"
)

// ErrNoText is returned for PDFs with no extractable text layer, typically
// scanned deeds that were never OCRed.
var ErrNoText = errors.New("pdf contains no extractable text")

// TextExtractor turns an uploaded PDF into plain text.
type TextExtractor interface {
	ExtractText(r io.Reader) (string, error)
}

type pdfTextExtractor struct{}

func NewExtractor() TextExtractor {
	return &pdfTextExtractor{}
}

func (e *pdfTextExtractor) ExtractText(r io.Reader) (text string, err error) {
	// The underlying pdf reader panics on some malformed files.
	defer func() {
		if rec := recover(); rec != nil {
			logger.L.Error("PDF reader panicked on malformed file", "panic", rec)
			text = ""
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading pdf upload: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading pdf text stream: %w", err)
	}

	text = buf.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	logger.L.Info("Extracted text from PDF", "pages", reader.NumPage(), "characters", len(text))
	return text, nil
}
