package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/username/modelia/backend/src/logger"
)

// ErrValidationFailed wraps all upload validation failures so handlers can
// map them to a 400 response.
var ErrValidationFailed = errors.New("file validation failed")

// AllowedClientContentTypes is a map for quick lookup of allowed
// client-declared MIME types for deed uploads.
var AllowedClientContentTypes = map[string]bool{
	"application/pdf":          true,
	"application/x-pdf":        true,
	"application/acrobat":      true,
	"application/octet-stream": true, // browsers fall back to this; magic bytes decide
}

// pdfMagic is the signature every PDF starts with.
var pdfMagic = []byte("%PDF-")

// ValidateClientContentType checks the Content-Type header provided by the client.
func ValidateClientContentType(contentType string) error {
	normalized := strings.ToLower(strings.Split(contentType, ";")[0])
	if !AllowedClientContentTypes[strings.TrimSpace(normalized)] {
		logger.L.Warn("Disallowed client-declared Content-Type", "contentType", contentType)
		return fmt.Errorf("%w: client-declared file type '%s' is not allowed for PDF upload", ErrValidationFailed, contentType)
	}
	return nil
}

// ValidatePDFMagicBytes checks the actual file content signature. The read
// pointer is reset so the extractor can read the full file afterwards.
func ValidatePDFMagicBytes(file io.ReadSeeker) error {
	if file == nil {
		return fmt.Errorf("%w: file is nil", ErrValidationFailed)
	}

	header := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("%w: failed to read file header: %v", ErrValidationFailed, err)
	}

	if _, seekErr := file.Seek(0, io.SeekStart); seekErr != nil {
		return fmt.Errorf("%w: failed to reset file read pointer: %v", ErrValidationFailed, seekErr)
	}

	if n < len(pdfMagic) || !bytes.Equal(header[:len(pdfMagic)], pdfMagic) {
		logger.L.Warn("Uploaded file is not a PDF (magic byte check failed)")
		return fmt.Errorf("%w: file content is not a PDF", ErrValidationFailed)
	}

	return nil
}
