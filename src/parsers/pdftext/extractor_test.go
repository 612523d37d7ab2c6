package pdftext

import (
	"strings"
	"testing"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	extractor := NewExtractor()

	inputs := []string{
		"",
		"plain text, not a pdf",
		"%PDF-1.7 but truncated garbage",
	}
	for _, input := range inputs {
		if _, err := extractor.ExtractText(strings.NewReader(input)); err == nil {
			t.Errorf("ExtractText(%q) = nil error, want failure", input)
		}
	}
}
