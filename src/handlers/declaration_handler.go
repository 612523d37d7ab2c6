// backend/src/handlers/declaration_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/username/modelia/backend/src/config"
	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/security"
	"github.com/username/modelia/backend/src/security/validation"
	"github.com/username/modelia/backend/src/services"
	"github.com/username/modelia/backend/src/utils"
)

const downloadFilename = "declaracion.211"

type DeclarationHandler struct {
	declarationService services.DeclarationService
	tokenService       *security.TokenService
}

func NewDeclarationHandler(service services.DeclarationService, tokenService *security.TokenService) *DeclarationHandler {
	return &DeclarationHandler{
		declarationService: service,
		tokenService:       tokenService,
	}
}

type generateResponse struct {
	*services.GenerateResult
	DownloadToken string `json:"downloadToken"`
}

// HandleGenerate accepts a multipart deed upload, runs the extraction
// pipeline and responds with the generated declaration plus a signed
// download token.
func (h *DeclarationHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		logger.L.Warn("Failed to retrieve file from request", "error", err)
		utils.SendJSONError(w, "Failed to retrieve file from request. Ensure 'file' field is used.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if fileHeader.Size > config.Cfg.MaxUploadSizeBytes {
		logger.L.Warn("Uploaded file header reports size too large", "fileSize", fileHeader.Size, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("File too large, max %d MB (header check)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	clientContentType := fileHeader.Header.Get("Content-Type")
	if err := validation.ValidateClientContentType(clientContentType); err != nil {
		logger.L.Warn("Invalid client-declared file type", "contentType", clientContentType, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePDFMagicBytes(file); err != nil {
		logger.L.Warn("Server-side file content validation failed", "filename", fileHeader.Filename, "error", err)
		utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.L.Debug("File content validated by magic bytes", "filename", fileHeader.Filename, "clientType", clientContentType)

	provider := strings.TrimSpace(r.FormValue("ai_provider"))
	if provider == "" {
		provider = config.Cfg.DefaultAIProvider
	}
	apiKey := strings.TrimSpace(r.FormValue("api_key"))
	if apiKey == "" {
		utils.SendJSONError(w, "Missing 'api_key' form field.", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), config.Cfg.ExtractionTimeout)
	defer cancel()

	logger.L.Info("Processing declaration request", "filename", fileHeader.Filename, "provider", provider)
	result, err := h.declarationService.GenerateFromPDF(ctx, file, fileHeader.Filename, provider, apiKey)
	if err != nil {
		h.writeGenerateError(w, fileHeader.Filename, err)
		return
	}

	h.writeGenerateResponse(w, result)
}

// HandleGenerateManual builds a declaration from form data already entered
// by the user, without any PDF or AI involvement.
func (h *DeclarationHandler) HandleGenerateManual(w http.ResponseWriter, r *http.Request) {
	var sections map[string]any
	if err := json.NewDecoder(r.Body).Decode(&sections); err != nil {
		logger.L.Warn("Failed to decode manual declaration payload", "error", err)
		utils.SendJSONError(w, "Invalid JSON request body.", http.StatusBadRequest)
		return
	}

	result, err := h.declarationService.GenerateFromSections(sections, "manual")
	if err != nil {
		h.writeGenerateError(w, "manual", err)
		return
	}

	h.writeGenerateResponse(w, result)
}

func (h *DeclarationHandler) writeGenerateError(w http.ResponseWriter, filename string, err error) {
	if errors.Is(err, services.ErrTextExtractionFailed) {
		logger.L.Warn("Declaration generation failed extracting PDF text", "filename", filename, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Could not read text from the PDF: %v", err), http.StatusBadRequest)
	} else if errors.Is(err, services.ErrExtractionFailed) {
		logger.L.Warn("Declaration generation failed during AI extraction", "filename", filename, "error", err)
		utils.SendJSONError(w, fmt.Sprintf("Error extracting deed data: %v", err), http.StatusBadGateway)
	} else {
		logger.L.Error("Internal error generating declaration", "filename", filename, "error", err)
		utils.SendJSONError(w, "An internal error occurred while generating the declaration. Please try again later.", http.StatusInternalServerError)
	}
}

func (h *DeclarationHandler) writeGenerateResponse(w http.ResponseWriter, result *services.GenerateResult) {
	token, err := h.tokenService.IssueDownloadToken(result.FileID)
	if err != nil {
		logger.L.Error("Failed to issue download token", "fileID", result.FileID, "error", err)
		utils.SendJSONError(w, "An internal error occurred while preparing the download.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(generateResponse{GenerateResult: result, DownloadToken: token}); err != nil {
		logger.L.Error("Error encoding JSON response for declaration result", "fileID", result.FileID, "error", err)
	}
}

// HandleDownload streams the stored flat file. The token from the query
// string must have been issued for the requested file id.
func (h *DeclarationHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("id")
	if fileID == "" {
		utils.SendJSONError(w, "Missing declaration id in path.", http.StatusBadRequest)
		return
	}

	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		utils.SendJSONError(w, "Missing 'token' query parameter.", http.StatusUnauthorized)
		return
	}

	tokenFileID, err := h.tokenService.ValidateDownloadToken(tokenString)
	if err != nil {
		logger.L.Warn("Invalid download token", "fileID", fileID, "error", err)
		utils.SendJSONError(w, "Invalid or expired download token.", http.StatusUnauthorized)
		return
	}
	if tokenFileID != fileID {
		logger.L.Warn("Download token issued for a different declaration", "fileID", fileID, "tokenFileID", tokenFileID)
		utils.SendJSONError(w, "Download token does not match the requested declaration.", http.StatusForbidden)
		return
	}

	stored, err := h.declarationService.GetDeclaration(fileID)
	if err != nil {
		if errors.Is(err, services.ErrDeclarationNotFound) {
			utils.SendJSONError(w, "Declaration not found.", http.StatusNotFound)
			return
		}
		logger.L.Error("Error retrieving declaration for download", "fileID", fileID, "error", err)
		utils.SendJSONError(w, "An internal error occurred while retrieving the declaration.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=iso-8859-1")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(stored.Content)); err != nil {
		logger.L.Error("Error writing declaration file to response", "fileID", fileID, "error", err)
	}
}
