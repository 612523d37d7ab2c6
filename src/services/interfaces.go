package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/username/modelia/backend/src/models"
)

var (
	ErrTextExtractionFailed = errors.New("pdf text extraction failed")
	ErrExtractionFailed     = errors.New("ai extraction failed")
	ErrDeclarationNotFound  = errors.New("declaration not found")
)

// GenerateResult is what a successful generation returns to the handler.
type GenerateResult struct {
	FileID             string              `json:"file_id"`
	RecordCount        int                 `json:"record_count"`
	WithholdingDerived bool                `json:"withholding_derived"`
	Declaration        *models.Declaration `json:"declaration"`
}

// StoredDeclaration is a generated file as persisted for later download.
type StoredDeclaration struct {
	FileID         string
	SourceFilename string
	Provider       string
	Content        string
	RecordCount    int
	CreatedAt      time.Time
}

// DeclarationService runs the deed-to-declaration pipeline and serves stored
// results.
type DeclarationService interface {
	// GenerateFromPDF extracts deed text from the PDF, structures it with
	// the named AI provider and encodes the Modelo 211 file.
	GenerateFromPDF(ctx context.Context, pdfFile io.Reader, sourceFilename, provider, apiKey string) (*GenerateResult, error)

	// GenerateFromSections skips extraction and encodes directly from a
	// sections map, e.g. a manually filled form. This path never fails.
	GenerateFromSections(sections map[string]any, sourceFilename string) (*GenerateResult, error)

	// GetDeclaration returns a previously generated file by its id.
	GetDeclaration(fileID string) (*StoredDeclaration, error)
}

// ContactEmailService forwards contact form messages to the configured inbox.
type ContactEmailService interface {
	SendContactMessage(name, replyTo, message string) error
}
