// backend/src/handlers/contact_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/services"
	"github.com/username/modelia/backend/src/utils"
)

type ContactHandler struct {
	emailService services.ContactEmailService
}

func NewContactHandler(emailService services.ContactEmailService) *ContactHandler {
	return &ContactHandler{emailService: emailService}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "Invalid JSON request body.", http.StatusBadRequest)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.SendJSONError(w, "Fields 'name', 'email' and 'message' are all required.", http.StatusBadRequest)
		return
	}

	if err := h.emailService.SendContactMessage(req.Name, req.Email, req.Message); err != nil {
		logger.L.Error("Failed to send contact message", "error", err)
		utils.SendJSONError(w, "Could not send your message right now. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "sent"}); err != nil {
		logger.L.Error("Error encoding JSON response for contact", "error", err)
	}
}
