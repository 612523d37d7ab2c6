// backend/src/handlers/declaration_handler_test.go
package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/username/modelia/backend/src/security"
	"github.com/username/modelia/backend/src/services"
)

type stubDeclarationService struct {
	stored map[string]*services.StoredDeclaration
}

func (s *stubDeclarationService) GenerateFromPDF(ctx context.Context, pdfFile io.Reader, sourceFilename, provider, apiKey string) (*services.GenerateResult, error) {
	return nil, services.ErrExtractionFailed
}

func (s *stubDeclarationService) GenerateFromSections(sections map[string]any, sourceFilename string) (*services.GenerateResult, error) {
	return &services.GenerateResult{FileID: "manual-id", RecordCount: 5}, nil
}

func (s *stubDeclarationService) GetDeclaration(fileID string) (*services.StoredDeclaration, error) {
	if stored, ok := s.stored[fileID]; ok {
		return stored, nil
	}
	return nil, services.ErrDeclarationNotFound
}

func newTestDeclarationHandler() (*DeclarationHandler, *security.TokenService) {
	tokenService := security.NewTokenService("a-test-secret-that-is-32-bytes-long!", time.Hour)
	svc := &stubDeclarationService{
		stored: map[string]*services.StoredDeclaration{
			"file-123": {FileID: "file-123", Content: "1211...\n2...", RecordCount: 2},
		},
	}
	return NewDeclarationHandler(svc, tokenService), tokenService
}

func downloadRequest(fileID, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/declarations/"+fileID+"/download?token="+token, nil)
	req.SetPathValue("id", fileID)
	return req
}

func TestHandleDownload(t *testing.T) {
	handler, tokenService := newTestDeclarationHandler()

	token, err := tokenService.IssueDownloadToken("file-123")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, downloadRequest("file-123", token))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "declaracion.211") {
		t.Errorf("Content-Disposition = %q, want declaracion.211 attachment", got)
	}
	if rec.Body.String() != "1211...\n2..." {
		t.Errorf("body = %q, want stored content", rec.Body.String())
	}
}

func TestHandleDownloadMissingToken(t *testing.T) {
	handler, _ := newTestDeclarationHandler()

	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, downloadRequest("file-123", ""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleDownloadInvalidToken(t *testing.T) {
	handler, _ := newTestDeclarationHandler()

	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, downloadRequest("file-123", "not-a-valid-token"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleDownloadTokenForOtherFile(t *testing.T) {
	handler, tokenService := newTestDeclarationHandler()

	token, err := tokenService.IssueDownloadToken("other-file")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, downloadRequest("file-123", token))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestHandleDownloadUnknownFile(t *testing.T) {
	handler, tokenService := newTestDeclarationHandler()

	token, err := tokenService.IssueDownloadToken("missing-file")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	rec := httptest.NewRecorder()
	handler.HandleDownload(rec, downloadRequest("missing-file", token))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleGenerateManual(t *testing.T) {
	handler, _ := newTestDeclarationHandler()

	body := strings.NewReader(`{"comprador": {"nombre_completo": "Test Buyer"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/declarations/manual", body)
	rec := httptest.NewRecorder()
	handler.HandleGenerateManual(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "manual-id") {
		t.Errorf("body = %q, want file id and download token", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "downloadToken") {
		t.Errorf("body = %q, missing downloadToken", rec.Body.String())
	}
}

func TestHandleGenerateManualBadJSON(t *testing.T) {
	handler, _ := newTestDeclarationHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/declarations/manual", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.HandleGenerateManual(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
