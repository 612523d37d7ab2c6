package services

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/modelia/backend/src/database"
	"github.com/username/modelia/backend/src/parsers/pdftext"
)

func newTestService(t *testing.T) DeclarationService {
	t.Helper()
	database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	return NewDeclarationService(pdftext.NewExtractor(), cache.New(time.Minute, time.Minute))
}

func TestGenerateFromSectionsAndDownload(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.GenerateFromSections(map[string]any{
		"comprador": map[string]any{"nombre_completo": "Test Buyer", "pais": "Alemania"},
		"vendedor":  map[string]any{"nombre_completo": "Test Seller", "pais": "Francia"},
		"operacion": map[string]any{"importe": float64(100000), "fecha_documento": "15/06/2024"},
	}, "manual")
	if err != nil {
		t.Fatalf("GenerateFromSections failed: %v", err)
	}

	if result.FileID == "" {
		t.Error("result has no file id")
	}
	if result.RecordCount != 5 {
		t.Errorf("record count = %d, want 5", result.RecordCount)
	}
	if !result.WithholdingDerived {
		t.Error("withholding not derived for non-resident seller")
	}

	stored, err := svc.GetDeclaration(result.FileID)
	if err != nil {
		t.Fatalf("GetDeclaration failed: %v", err)
	}
	if stored.RecordCount != result.RecordCount {
		t.Errorf("stored record count = %d, want %d", stored.RecordCount, result.RecordCount)
	}
	if got := len(strings.Split(stored.Content, "\n")); got != 5 {
		t.Errorf("stored content has %d lines, want 5", got)
	}
}

func TestGetDeclarationSurvivesCacheEviction(t *testing.T) {
	database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	fileCache := cache.New(time.Minute, time.Minute)
	svc := NewDeclarationService(pdftext.NewExtractor(), fileCache)

	result, err := svc.GenerateFromSections(map[string]any{}, "manual")
	if err != nil {
		t.Fatalf("GenerateFromSections failed: %v", err)
	}

	fileCache.Flush()

	stored, err := svc.GetDeclaration(result.FileID)
	if err != nil {
		t.Fatalf("GetDeclaration after cache flush failed: %v", err)
	}
	if stored.FileID != result.FileID {
		t.Errorf("stored file id = %q, want %q", stored.FileID, result.FileID)
	}
}

func TestGetDeclarationNotFound(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.GetDeclaration("no-such-id"); !errors.Is(err, ErrDeclarationNotFound) {
		t.Errorf("err = %v, want ErrDeclarationNotFound", err)
	}
}
