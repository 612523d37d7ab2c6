// backend/src/handlers/contact_handler_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type recordingEmailService struct {
	name, replyTo, message string
	err                    error
	calls                  int
}

func (s *recordingEmailService) SendContactMessage(name, replyTo, message string) error {
	s.calls++
	s.name, s.replyTo, s.message = name, replyTo, message
	return s.err
}

func TestHandleContact(t *testing.T) {
	email := &recordingEmailService{}
	handler := NewContactHandler(email)

	body := strings.NewReader(`{"name": "Ana", "email": "ana@example.com", "message": "Hola"}`)
	rec := httptest.NewRecorder()
	handler.HandleContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if email.calls != 1 {
		t.Fatalf("SendContactMessage called %d times, want 1", email.calls)
	}
	if email.name != "Ana" || email.replyTo != "ana@example.com" || email.message != "Hola" {
		t.Errorf("message forwarded as %q/%q/%q", email.name, email.replyTo, email.message)
	}
}

func TestHandleContactMissingFields(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"name": "Ana"}`,
		`{"name": "Ana", "email": "  ", "message": "Hola"}`,
		`not json`,
	}
	for _, body := range bodies {
		email := &recordingEmailService{}
		handler := NewContactHandler(email)

		rec := httptest.NewRecorder()
		handler.HandleContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
		if email.calls != 0 {
			t.Errorf("body %q: email service called", body)
		}
	}
}

func TestHandleContactSendFailure(t *testing.T) {
	email := &recordingEmailService{err: errors.New("smtp down")}
	handler := NewContactHandler(email)

	body := strings.NewReader(`{"name": "Ana", "email": "ana@example.com", "message": "Hola"}`)
	rec := httptest.NewRecorder()
	handler.HandleContact(rec, httptest.NewRequest(http.MethodPost, "/api/contact", body))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
