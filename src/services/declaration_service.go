package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/modelia/backend/src/database"
	"github.com/username/modelia/backend/src/encoder"
	"github.com/username/modelia/backend/src/extraction"
	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/parsers/pdftext"
	"github.com/username/modelia/backend/src/schema"
)

const (
	ckDeclaration = "declaration_%s"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type declarationServiceImpl struct {
	textExtractor pdftext.TextExtractor
	fileCache     *cache.Cache
}

func NewDeclarationService(textExtractor pdftext.TextExtractor, fileCache *cache.Cache) DeclarationService {
	return &declarationServiceImpl{
		textExtractor: textExtractor,
		fileCache:     fileCache,
	}
}

func (s *declarationServiceImpl) GenerateFromPDF(ctx context.Context, pdfFile io.Reader, sourceFilename, provider, apiKey string) (*GenerateResult, error) {
	overallStartTime := time.Now()
	logger.L.Info("GenerateFromPDF START", "filename", sourceFilename, "provider", provider)

	deedText, err := s.textExtractor.ExtractText(pdfFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTextExtractionFailed, err)
	}

	aiExtractor, err := extraction.GetExtractor(provider, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	sections, err := aiExtractor.Extract(ctx, deedText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	result, err := s.encodeAndStore(sections, sourceFilename, provider)
	if err != nil {
		return nil, err
	}

	logger.L.Info("GenerateFromPDF END", "fileID", result.FileID, "duration", time.Since(overallStartTime))
	return result, nil
}

func (s *declarationServiceImpl) GenerateFromSections(sections map[string]any, sourceFilename string) (*GenerateResult, error) {
	return s.encodeAndStore(sections, sourceFilename, "manual")
}

// encodeAndStore runs the core contract (sections map in, flat file out) and
// persists the result under a fresh file id. Normalization and encoding are
// total, so the only error source here is storage.
func (s *declarationServiceImpl) encodeAndStore(sections map[string]any, sourceFilename, provider string) (*GenerateResult, error) {
	decl := schema.Normalize(sections)
	content := encoder.Encode(decl)
	recordCount := strings.Count(content, "\n") + 1

	fileID := uuid.NewString()
	createdAt := time.Now().UTC()
	_, err := database.DB.Exec(
		`INSERT INTO declarations (file_id, source_filename, ai_provider, content, record_count, withholding_derived, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		fileID, sourceFilename, provider, content, recordCount, decl.Operation.WithholdingDerived, createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error storing declaration: %w", err)
	}

	s.fileCache.Set(fmt.Sprintf(ckDeclaration, fileID), &StoredDeclaration{
		FileID:         fileID,
		SourceFilename: sourceFilename,
		Provider:       provider,
		Content:        content,
		RecordCount:    recordCount,
		CreatedAt:      createdAt,
	}, DefaultCacheExpiration)

	logger.L.Info("Declaration stored", "fileID", fileID, "records", recordCount)
	return &GenerateResult{
		FileID:             fileID,
		RecordCount:        recordCount,
		WithholdingDerived: decl.Operation.WithholdingDerived,
		Declaration:        decl,
	}, nil
}

func (s *declarationServiceImpl) GetDeclaration(fileID string) (*StoredDeclaration, error) {
	cacheKey := fmt.Sprintf(ckDeclaration, fileID)
	if cached, found := s.fileCache.Get(cacheKey); found {
		logger.L.Debug("Cache hit for declaration", "fileID", fileID)
		return cached.(*StoredDeclaration), nil
	}

	row := database.DB.QueryRow(
		`SELECT file_id, source_filename, ai_provider, content, record_count, created_at FROM declarations WHERE file_id = ?`,
		fileID,
	)

	var stored StoredDeclaration
	if err := row.Scan(&stored.FileID, &stored.SourceFilename, &stored.Provider, &stored.Content, &stored.RecordCount, &stored.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrDeclarationNotFound
		}
		return nil, fmt.Errorf("error querying declaration %s: %w", fileID, err)
	}

	s.fileCache.Set(cacheKey, &stored, DefaultCacheExpiration)
	return &stored, nil
}
